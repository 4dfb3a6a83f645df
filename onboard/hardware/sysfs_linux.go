//go:build linux

package hardware

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"time"

	"golang.org/x/sys/unix"
)

// SysfsPin drives a GPIO line through the legacy sysfs interface. The value
// file stays open so a write is a single pwrite.
type SysfsPin struct {
	fd int
}

func NewSysfsPin(root string, gpio int) (pin *SysfsPin, err error) {
	base := filepath.Join(root, "gpio", fmt.Sprintf("gpio%d", gpio))
	if err = export(filepath.Join(root, "gpio", "export"), base, gpio); err != nil {
		return
	}
	if err = writeFile(filepath.Join(base, "direction"), "low"); err != nil {
		return
	}

	fd, err := unix.Open(filepath.Join(base, "value"), unix.O_WRONLY|unix.O_CLOEXEC, 0)
	if err != nil {
		return nil, fmt.Errorf("gpio%d: %w", gpio, err)
	}

	return &SysfsPin{fd: fd}, nil
}

func (p *SysfsPin) Set(high bool) error {
	v := []byte{'0'}
	if high {
		v[0] = '1'
	}
	_, err := unix.Pwrite(p.fd, v, 0)
	return err
}

func (p *SysfsPin) Close() error {
	return unix.Close(p.fd)
}

// SysfsPWM drives one channel of a pwmchip. Duty is scaled from [0, MaxDuty]
// onto the configured period.
type SysfsPWM struct {
	fd     int
	period int64 // ns
}

func NewSysfsPWM(root string, chip, channel, frequency int) (pwm *SysfsPWM, err error) {
	if frequency <= 0 {
		return nil, fmt.Errorf("invalid pwm frequency %d", frequency)
	}

	chipDir := filepath.Join(root, "pwm", fmt.Sprintf("pwmchip%d", chip))
	base := filepath.Join(chipDir, fmt.Sprintf("pwm%d", channel))
	if err = export(filepath.Join(chipDir, "export"), base, channel); err != nil {
		return
	}

	period := int64(time.Second) / int64(frequency)
	if err = writeFile(filepath.Join(base, "duty_cycle"), "0"); err != nil {
		return
	}
	if err = writeFile(filepath.Join(base, "period"), strconv.FormatInt(period, 10)); err != nil {
		return
	}
	if err = writeFile(filepath.Join(base, "enable"), "1"); err != nil {
		return
	}

	fd, err := unix.Open(filepath.Join(base, "duty_cycle"), unix.O_WRONLY|unix.O_CLOEXEC, 0)
	if err != nil {
		return nil, fmt.Errorf("pwmchip%d/pwm%d: %w", chip, channel, err)
	}

	return &SysfsPWM{fd: fd, period: period}, nil
}

func (p *SysfsPWM) SetDuty(duty uint16) error {
	ns := p.period * int64(ClampDuty(int(duty))) / MaxDuty
	_, err := unix.Pwrite(p.fd, []byte(strconv.FormatInt(ns, 10)), 0)
	return err
}

func (p *SysfsPWM) Close() error {
	return unix.Close(p.fd)
}

// export requests the line from the kernel unless it is already exported.
func export(exportFile, dir string, n int) error {
	if unix.Access(dir, unix.F_OK) == nil {
		return nil
	}
	err := writeFile(exportFile, strconv.Itoa(n))
	if alreadyExported(err) {
		return nil
	}
	return err
}

// alreadyExported reports the kernel refusing a second export of a line.
func alreadyExported(err error) bool {
	return errors.Is(err, unix.EBUSY)
}

func writeFile(path, value string) error {
	fd, err := unix.Open(path, unix.O_WRONLY|unix.O_TRUNC|unix.O_CLOEXEC, 0)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer unix.Close(fd)

	if _, err = unix.Write(fd, []byte(value)); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
