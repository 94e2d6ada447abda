package api

import (
	"net/http"
	"strconv"
	"unicode/utf8"
)

const (
	contentTypeText = "text/plain; charset=utf-8"
	contentTypeJSON = "application/json"
)

// Responder is anything a handler can return that knows how to write itself.
type Responder interface {
	Respond(w http.ResponseWriter)
}

// Response is a fully formed HTTP response.
type Response struct {
	Status      int
	ContentType string
	Body        []byte
}

// Text builds a plain text response.
func Text(status int, body string) Response {
	return Response{Status: status, ContentType: contentTypeText, Body: []byte(body)}
}

// Respond writes the response with an explicit Content-Length.
func (r Response) Respond(w http.ResponseWriter) {
	ct := r.ContentType
	if ct == "" {
		ct = contentTypeText
	}
	status := r.Status
	if status == 0 {
		status = http.StatusOK
	}

	h := w.Header()
	h.Set("Content-Type", ct)
	h.Set("Content-Length", strconv.Itoa(len(r.Body)))
	w.WriteHeader(status)
	_, _ = w.Write(r.Body)
}

// Either is a handler result that is one of two shapes: a Left carrying a
// pre-formed response (typically a rejection) or a Right carrying a text body
// that is sent as 200.
type Either struct {
	left  *Response
	right string
}

// Left wraps a pre-formed response.
func Left(resp Response) Either {
	return Either{left: &resp}
}

// Right wraps a success body.
func Right(body string) Either {
	return Either{right: body}
}

// IsLeft reports whether e holds a pre-formed response.
func (e Either) IsLeft() bool {
	return e.left != nil
}

// LeftValue returns the pre-formed response, if any.
func (e Either) LeftValue() (Response, bool) {
	if e.left == nil {
		return Response{}, false
	}
	return *e.left, true
}

// RightValue returns the success body, if any.
func (e Either) RightValue() (string, bool) {
	if e.left != nil {
		return "", false
	}
	return e.right, true
}

// Respond writes whichever side e holds.
func (e Either) Respond(w http.ResponseWriter) {
	if e.left != nil {
		e.left.Respond(w)
		return
	}
	Text(http.StatusOK, e.right).Respond(w)
}

// NameObject is the record returned by the JSON endpoint.
type NameObject struct {
	Name string
}

// MarshalJSON encodes o as {"name":"..."} with no insignificant whitespace.
func (o NameObject) MarshalJSON() ([]byte, error) {
	return o.AppendJSON(nil), nil
}

// AppendJSON appends the canonical encoding of o to b.
func (o NameObject) AppendJSON(b []byte) []byte {
	b = append(b, `{"name":`...)
	b = appendJSONString(b, o.Name)
	return append(b, '}')
}

const hexDigits = "0123456789abcdef"

// appendJSONString appends s as a JSON string literal. Only the characters
// JSON requires are escaped; invalid UTF-8 becomes U+FFFD.
func appendJSONString(b []byte, s string) []byte {
	b = append(b, '"')
	for i := 0; i < len(s); {
		c := s[i]
		if c < utf8.RuneSelf {
			switch c {
			case '"', '\\':
				b = append(b, '\\', c)
			case '\n':
				b = append(b, '\\', 'n')
			case '\r':
				b = append(b, '\\', 'r')
			case '\t':
				b = append(b, '\\', 't')
			case '\b':
				b = append(b, '\\', 'b')
			case '\f':
				b = append(b, '\\', 'f')
			default:
				if c < 0x20 {
					b = append(b, '\\', 'u', '0', '0', hexDigits[c>>4], hexDigits[c&0xf])
				} else {
					b = append(b, c)
				}
			}
			i++
			continue
		}

		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			b = utf8.AppendRune(b, utf8.RuneError)
		} else {
			b = append(b, s[i:i+size]...)
		}
		i += size
	}
	return append(b, '"')
}
