// Package contacts implements the "load from contacts" use case.
package contacts

import (
	"context"
	"errors"
	"fmt"

	"github.com/EtsTest-ReactNativeApps/Find-Phone-Country/internal/domain"
	"github.com/EtsTest-ReactNativeApps/Find-Phone-Country/internal/ports"
)

// Importer asks for the contacts permission and lets the user pick a number.
// It returns the picked number exactly as stored in the address book.
type Importer struct {
	Gate   ports.PermissionGate
	Picker ports.ContactPicker
	Logger ports.Logger
}

// Import implements ports.ContactImporter.
func (i *Importer) Import(ctx context.Context) (string, bool, error) {
	if i.Gate == nil || i.Picker == nil || i.Logger == nil {
		return "", false, errors.New("contacts.Importer dependencies not satisfied")
	}

	granted, err := i.Gate.Request(ctx, domain.PermissionReadContacts)
	if err != nil {
		i.Logger.Warn("permission request failed", map[string]interface{}{
			"permission": string(domain.PermissionReadContacts),
			"error":      err.Error(),
		})
		return "", false, nil
	}
	if !granted {
		return "", false, domain.PermissionDenied(domain.MsgContactsRequired).WithOp("import contacts")
	}

	sel, ok, err := i.Picker.Pick(ctx)
	if err != nil {
		return "", false, fmt.Errorf("pick contact: %w", err)
	}
	if !ok {
		i.Logger.Debug("contact selection cancelled", nil)
		return "", false, nil
	}

	i.Logger.Debug("contact selected", map[string]interface{}{
		"name":  sel.Name,
		"label": sel.Label,
	})
	return sel.Number, true, nil
}

var _ ports.ContactImporter = (*Importer)(nil)
