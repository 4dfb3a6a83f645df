package server

import (
	_ "embed"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/CodedInternet/gorccar/onboard/drive"
	errs "github.com/CodedInternet/gorccar/onboard/errors"
	"go.uber.org/zap"
)

//go:embed index.html
var indexPage []byte

var corsHeader = Header{Name: "Access-Control-Allow-Origin", Value: "*"}

type statusPayload struct {
	Status string `json:"status"`
}

// Router maps a request path onto one of the fixed routes. It holds no state
// between requests.
type Router struct {
	Resolver *drive.Resolver
	Log      *zap.Logger
}

func NewRouter(resolver *drive.Resolver, log *zap.Logger) *Router {
	if log == nil {
		log = zap.NewNop()
	}
	return &Router{Resolver: resolver, Log: log}
}

// Route evaluates the rules in order; the first match wins.
func (rt *Router) Route(path string) Response {
	switch {
	case strings.Contains(path, "/ping"):
		return Response{Status: 200, ContentType: TEXT_PLAIN, Body: []byte("OK")}

	case path == "/" || strings.Contains(path, "index"):
		return Response{Status: 200, ContentType: TEXT_HTML, Body: indexPage}

	case strings.Contains(path, "/cmd"):
		result := rt.command(path)
		body, _ := json.Marshal(statusPayload{Status: result.String()})
		return Response{
			Status:      200,
			ContentType: APP_JSON,
			Headers:     []Header{corsHeader},
			Body:        body,
		}
	}

	return Response{Status: 404, ContentType: TEXT_PLAIN, Body: []byte("Not Found")}
}

// command never fails outward: every problem becomes a result kind and the
// motors are stopped on anything that is not ok.
func (rt *Router) command(path string) (result drive.Result) {
	defer func() {
		if r := recover(); r != nil {
			rt.Resolver.Stop()
			rt.Log.Error("command panic", zap.String("path", path), zap.Any("panic", r))
			result = drive.ResultError
		}
	}()

	action, speed, err := commandParams(path)
	if err != nil {
		rt.Resolver.Stop()
		rt.Log.Warn("bad command", zap.String("path", path), zap.Error(err))
		return drive.ResultError
	}

	result, err = rt.Resolver.ResolveNamed(action, speed)
	if err != nil && result != drive.ResultUnknown {
		rt.Log.Warn("command failed", zap.String("action", action), zap.Error(err))
	}
	return
}

func commandParams(path string) (action string, speed int, err error) {
	params, err := ParseQuery(path)
	if err != nil {
		return
	}

	action, ok := params["action"]
	if !ok {
		action = drive.Stop.String()
	}

	raw, ok := params["speed"]
	if !ok {
		speed = drive.DEFAULT_SPEED
		return
	}
	speed, err = strconv.Atoi(raw)
	if err != nil {
		err = errs.SpeedError{Value: raw, Err: err}
	}
	return
}
