package errors

import (
	stderrs "errors"
	"fmt"
	"net/http"
	"testing"
)

func TestHTTPStatusCode(t *testing.T) {
	cases := map[ErrorCode]int{
		ErrorCodeNotFound:        http.StatusNotFound,
		ErrorCodeInvalidArgument: http.StatusUnprocessableEntity,
		ErrorCodeValidation:      http.StatusBadRequest,
		ErrorCodeJSON:            http.StatusBadRequest,
		ErrorCodeInput:           http.StatusBadRequest,
		ErrorCodeDuplicateKey:    http.StatusConflict,
		ErrorCodeUnavailable:     http.StatusServiceUnavailable,
		ErrorCodeDB:              http.StatusInternalServerError,
		ErrorCodePanic:           http.StatusInternalServerError,
		ErrorCodeUnknown:         http.StatusInternalServerError,
		9999:                     http.StatusInternalServerError,
	}
	for code, want := range cases {
		if got := HTTPStatusCode(code); got != want {
			t.Fatalf("HTTPStatusCode(%v) = %d, want %d", code, got, want)
		}
	}
}

func TestCodeString(t *testing.T) {
	if ErrorCodeNotFound.String() != "not_found" || ErrorCode(999).String() != "code(999)" {
		t.Fatalf("String() mismatch")
	}
}

func TestErrorRendering(t *testing.T) {
	var nilErr *Error
	if nilErr.Error() != "<nil>" {
		t.Fatalf("nil render = %q", nilErr.Error())
	}

	root := stderrs.New("conn refused")
	err := WithOp(Wrapf(root, ErrorCodeUnavailable, "report %s", "save"), "seo.Save")
	if got := err.Error(); got != "seo.Save: report save: conn refused" {
		t.Fatalf("Error() = %q", got)
	}
	if !stderrs.Is(err, root) || Root(err) != root {
		t.Fatalf("cause lost")
	}
	e, ok := As(err)
	if !ok || e.Op() != "seo.Save" || e.Message() != "report save" {
		t.Fatalf("As() = %+v", e)
	}
}

func TestWrapNil(t *testing.T) {
	if Wrap(nil, ErrorCodeDB, "x") != nil || Wrapf(nil, ErrorCodeDB, "x %d", 1) != nil {
		t.Fatalf("wrapping nil must stay nil")
	}
	if WithField(nil, "title") != nil {
		t.Fatalf("WithField(nil) must stay nil")
	}
}

func TestWithFieldCopyOnWrite(t *testing.T) {
	base := InvalidArgf("bad id")
	withField := WithField(base, "id")
	if e, _ := As(base); e.Field() != "" {
		t.Fatalf("original mutated")
	}
	if e, _ := As(withField); e.Field() != "id" {
		t.Fatalf("field not set")
	}

	foreign := WithField(stderrs.New("boom"), "title")
	if CodeOf(foreign) != ErrorCodeUnknown || WireFrom(foreign).Field != "title" {
		t.Fatalf("foreign error not wrapped: %+v", WireFrom(foreign))
	}
	if WithOp(stderrs.New("x"), "op").Error() != "x" {
		t.Fatalf("WithOp should leave foreign errors alone")
	}
}

func TestWireAndHTTP(t *testing.T) {
	status, w := HTTP(fmt.Errorf("ctx: %w", NotFoundf("report %s not found", "abc")))
	if status != http.StatusNotFound || w.Code != ErrorCodeNotFound || w.Message != "report abc not found" {
		t.Fatalf("HTTP() = %d %+v", status, w)
	}
	if status, w := HTTP(nil); status != http.StatusOK || w != (Wire{}) {
		t.Fatalf("HTTP(nil) = %d %+v", status, w)
	}
	if w := WireFrom(stderrs.New("plain")); w.Code != ErrorCodeUnknown || w.Message != "plain" {
		t.Fatalf("WireFrom foreign = %+v", w)
	}
}

func TestSugar(t *testing.T) {
	cases := map[ErrorCode]error{
		ErrorCodeNotFound:        NotFoundf("x"),
		ErrorCodeInvalidArgument: InvalidArgf("x"),
		ErrorCodeValidation:      Validationf("x"),
		ErrorCodeJSON:            JSONErrf("x"),
		ErrorCodePanic:           PanicErrf("x"),
		ErrorCodeUnavailable:     Unavailablef("x"),
		ErrorCodeInput:           Inputf("x"),
		ErrorCodeUnknown:         Internalf("x"),
	}
	for want, err := range cases {
		if !IsCode(err, want) {
			t.Fatalf("%v: got %v", want, CodeOf(err))
		}
	}
	if IsCode(nil, ErrorCodeUnknown) {
		t.Fatalf("nil error carries no code")
	}
}
