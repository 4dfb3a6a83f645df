package server

import (
	"bytes"
	"fmt"
	"io"
)

const (
	TEXT_PLAIN = "text/plain"
	TEXT_HTML  = "text/html"
	APP_JSON   = "application/json"
)

var statusText = map[int]string{
	200: "OK",
	404: "Not Found",
}

type Header struct {
	Name, Value string
}

// Response is framed as HTTP/1.0 without Content-Length; the server closes the
// connection after the body.
type Response struct {
	Status      int
	ContentType string
	Headers     []Header
	Body        []byte
}

func (r Response) Bytes() []byte {
	var buf bytes.Buffer

	reason, ok := statusText[r.Status]
	if !ok {
		reason = "Unknown"
	}
	fmt.Fprintf(&buf, "HTTP/1.0 %d %s\r\n", r.Status, reason)
	fmt.Fprintf(&buf, "Content-Type: %s\r\n", r.ContentType)
	for _, h := range r.Headers {
		fmt.Fprintf(&buf, "%s: %s\r\n", h.Name, h.Value)
	}
	buf.WriteString("\r\n")
	buf.Write(r.Body)

	return buf.Bytes()
}

func (r Response) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(r.Bytes())
	return int64(n), err
}
