package domain

// Permission names a platform capability the user must grant.
type Permission string

const (
	PermissionReadContacts Permission = "read_contacts"
)

// ContactSelection is one phone number picked from the address book.
type ContactSelection struct {
	Name   string
	Label  string
	Number string
}

// AddressBook mirrors the contacts YAML file.
type AddressBook struct {
	Contacts []Contact `yaml:"contacts"`
}

// Contact is an address book entry.
type Contact struct {
	Name   string         `yaml:"name"`
	Phones []ContactPhone `yaml:"phones"`
}

// ContactPhone is a labelled number of a contact.
type ContactPhone struct {
	Label  string `yaml:"label"`
	Number string `yaml:"number"`
}

// Selections flattens the book into one entry per number, skipping blanks.
func (b AddressBook) Selections() []ContactSelection {
	var out []ContactSelection
	for _, c := range b.Contacts {
		for _, p := range c.Phones {
			if p.Number == "" {
				continue
			}
			out = append(out, ContactSelection{Name: c.Name, Label: p.Label, Number: p.Number})
		}
	}
	return out
}
