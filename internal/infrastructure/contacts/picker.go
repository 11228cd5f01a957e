package contacts

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/EtsTest-ReactNativeApps/Find-Phone-Country/internal/domain"
	"github.com/EtsTest-ReactNativeApps/Find-Phone-Country/internal/ports"
)

// AddressBookPicker offers the numbers of a YAML address book for selection.
type AddressBookPicker struct {
	path    string
	chooser ports.ContactChooser
	log     ports.Logger
}

// NewAddressBookPicker builds a picker reading the book at path.
func NewAddressBookPicker(path string, chooser ports.ContactChooser, log ports.Logger) *AddressBookPicker {
	return &AddressBookPicker{path: path, chooser: chooser, log: log}
}

// Pick implements ports.ContactPicker. A missing or empty book yields no selection.
func (p *AddressBookPicker) Pick(ctx context.Context) (domain.ContactSelection, bool, error) {
	book, err := LoadAddressBook(p.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			p.debug("address book not found", map[string]interface{}{"path": p.path})
			return domain.ContactSelection{}, false, nil
		}
		return domain.ContactSelection{}, false, err
	}
	choices := book.Selections()
	if len(choices) == 0 {
		p.debug("address book has no numbers", map[string]interface{}{"path": p.path})
		return domain.ContactSelection{}, false, nil
	}
	if err := ctx.Err(); err != nil {
		return domain.ContactSelection{}, false, err
	}
	if p.chooser == nil {
		return domain.ContactSelection{}, false, fmt.Errorf("no contact chooser configured")
	}
	idx, ok, err := p.chooser.ChooseContact(choices)
	if err != nil {
		return domain.ContactSelection{}, false, fmt.Errorf("choose contact: %w", err)
	}
	if !ok {
		return domain.ContactSelection{}, false, nil
	}
	if idx < 0 || idx >= len(choices) {
		return domain.ContactSelection{}, false, fmt.Errorf("contact index %d out of range", idx)
	}
	return choices[idx], true, nil
}

// Path returns the address book location.
func (p *AddressBookPicker) Path() string {
	return p.path
}

func (p *AddressBookPicker) debug(msg string, fields map[string]interface{}) {
	if p.log != nil {
		p.log.Debug(msg, fields)
	}
}

// LoadAddressBook reads and decodes a YAML address book.
func LoadAddressBook(path string) (domain.AddressBook, error) {
	if path == "" {
		return domain.AddressBook{}, fs.ErrNotExist
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.AddressBook{}, err
	}
	var book domain.AddressBook
	if err := yaml.Unmarshal(data, &book); err != nil {
		return domain.AddressBook{}, fmt.Errorf("parse address book %s: %w", path, err)
	}
	return book, nil
}

var _ ports.ContactPicker = (*AddressBookPicker)(nil)
