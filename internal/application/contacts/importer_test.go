package contacts

import (
	"context"
	"errors"
	"testing"

	"github.com/EtsTest-ReactNativeApps/Find-Phone-Country/internal/domain"
	"github.com/EtsTest-ReactNativeApps/Find-Phone-Country/internal/pkg/logger"
)

type stubGate struct {
	granted bool
	err     error
}

func (s stubGate) Request(context.Context, domain.Permission) (bool, error) {
	return s.granted, s.err
}

type stubPicker struct {
	sel    domain.ContactSelection
	ok     bool
	err    error
	called bool
}

func (s *stubPicker) Pick(context.Context) (domain.ContactSelection, bool, error) {
	s.called = true
	return s.sel, s.ok, s.err
}

func TestImporterReturnsRawNumber(t *testing.T) {
	picker := &stubPicker{sel: domain.ContactSelection{Name: "Alice", Number: "+1 (415) 555-0100"}, ok: true}
	imp := &Importer{Gate: stubGate{granted: true}, Picker: picker, Logger: logger.Discard()}

	number, ok, err := imp.Import(context.Background())
	if err != nil || !ok {
		t.Fatalf("Import() ok=%v err=%v", ok, err)
	}
	if number != "+1 (415) 555-0100" {
		t.Fatalf("number = %q, want raw value", number)
	}
}

func TestImporterDenied(t *testing.T) {
	picker := &stubPicker{}
	imp := &Importer{Gate: stubGate{granted: false}, Picker: picker, Logger: logger.Discard()}

	_, ok, err := imp.Import(context.Background())
	if ok {
		t.Fatal("denied import should not yield a number")
	}
	if !domain.IsKind(err, domain.KindPermissionDenied) {
		t.Fatalf("err = %v, want permission denied", err)
	}
	var derr *domain.Error
	if !errors.As(err, &derr) || derr.Message != domain.MsgContactsRequired {
		t.Fatalf("message = %v", err)
	}
	if picker.called {
		t.Fatal("picker must not open without permission")
	}
}

func TestImporterNoValue(t *testing.T) {
	tests := []struct {
		name string
		gate stubGate
		pick *stubPicker
	}{
		{name: "gate error", gate: stubGate{err: errors.New("tty closed")}, pick: &stubPicker{}},
		{name: "cancelled", gate: stubGate{granted: true}, pick: &stubPicker{ok: false}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			imp := &Importer{Gate: tt.gate, Picker: tt.pick, Logger: logger.Discard()}
			number, ok, err := imp.Import(context.Background())
			if err != nil || ok || number != "" {
				t.Fatalf("Import() = %q, %v, %v; want no value", number, ok, err)
			}
		})
	}
}

func TestImporterPickerError(t *testing.T) {
	imp := &Importer{
		Gate:   stubGate{granted: true},
		Picker: &stubPicker{err: errors.New("broken book")},
		Logger: logger.Discard(),
	}
	if _, _, err := imp.Import(context.Background()); err == nil {
		t.Fatal("expected picker error")
	}
}

func TestImporterRequiresDependencies(t *testing.T) {
	if _, _, err := (&Importer{}).Import(context.Background()); err == nil {
		t.Fatal("expected dependency error")
	}
}
