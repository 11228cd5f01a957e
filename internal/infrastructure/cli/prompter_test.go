package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/EtsTest-ReactNativeApps/Find-Phone-Country/internal/domain"
)

func TestPrompterAskPermission(t *testing.T) {
	tests := map[string]bool{
		"y\n":   true,
		"YES\n": true,
		"n\n":   false,
		"\n":    false,
		"":      false,
	}
	for input, want := range tests {
		var out bytes.Buffer
		p := NewPrompter(strings.NewReader(input), &out)
		got, err := p.AskPermission(domain.PermissionReadContacts, "need contacts")
		if err != nil {
			t.Fatalf("AskPermission(%q) error = %v", input, err)
		}
		if got != want {
			t.Fatalf("AskPermission(%q) = %v, want %v", input, got, want)
		}
		if !strings.Contains(out.String(), "Allow read contacts?") {
			t.Fatalf("prompt = %q", out.String())
		}
	}
}

func TestPrompterChooseContact(t *testing.T) {
	choices := []domain.ContactSelection{
		{Name: "Alice", Label: "mobile", Number: "+1 (415) 555-0100"},
		{Name: "Bob", Number: "+44 20 7123 4567"},
	}

	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("9\nabc\n2\n"), &out)
	idx, ok, err := p.ChooseContact(choices)
	if err != nil || !ok || idx != 1 {
		t.Fatalf("ChooseContact() = %d, %v, %v", idx, ok, err)
	}
	if strings.Count(out.String(), "is not in the list") != 2 {
		t.Fatalf("output = %q", out.String())
	}
	if !strings.Contains(out.String(), "1) Alice (mobile)  +1 (415) 555-0100") {
		t.Fatalf("list = %q", out.String())
	}

	for _, input := range []string{"\n", ""} {
		p = NewPrompter(strings.NewReader(input), &bytes.Buffer{})
		if _, ok, err := p.ChooseContact(choices); ok || err != nil {
			t.Fatalf("ChooseContact(%q) ok=%v err=%v, want cancel", input, ok, err)
		}
	}
}

func TestPrompterReadLineSharesBuffer(t *testing.T) {
	p := NewPrompter(strings.NewReader("first\ny\nlast"), &bytes.Buffer{})
	if line, _ := p.ReadLine(); line != "first" {
		t.Fatalf("line = %q", line)
	}
	if ok, _ := p.AskPermission(domain.PermissionReadContacts, ""); !ok {
		t.Fatal("expected grant from buffered input")
	}
	line, err := p.ReadLine()
	if line != "last" || err == nil {
		t.Fatalf("ReadLine() = %q, %v; want partial line with EOF", line, err)
	}
}
