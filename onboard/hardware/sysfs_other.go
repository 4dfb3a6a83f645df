//go:build !linux

package hardware

import (
	errs "github.com/CodedInternet/gorccar/onboard/errors"
)

type SysfsPin struct{}

func NewSysfsPin(root string, gpio int) (*SysfsPin, error) {
	return nil, errs.ErrUnsupportedPlatform
}

func (p *SysfsPin) Set(high bool) error { return errs.ErrUnsupportedPlatform }
func (p *SysfsPin) Close() error        { return nil }

type SysfsPWM struct{}

func NewSysfsPWM(root string, chip, channel, frequency int) (*SysfsPWM, error) {
	return nil, errs.ErrUnsupportedPlatform
}

func (p *SysfsPWM) SetDuty(duty uint16) error { return errs.ErrUnsupportedPlatform }
func (p *SysfsPWM) Close() error              { return nil }
