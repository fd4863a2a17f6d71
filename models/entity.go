package models

// SlotPolicy fixes the stored filename and content type for one attachment
// slot, so the policy lives in one table instead of inline literals.
type SlotPolicy struct {
	Filename    string
	ContentType string
}

// Entity describes one registrable record kind: where it lives in MongoDB,
// which field must stay unique, and which attachment slots it carries.
type Entity struct {
	Collection string
	KeyField   string
	Category   string
	Slots      map[string]SlotPolicy
}

// Filenames are fixed per slot; re-uploading the same slot overwrites the
// object in place, so the public URL never changes for a given user.
var VendorEntity = Entity{
	Collection: "vendors",
	KeyField:   "phone",
	Category:   "vendor",
	Slots: map[string]SlotPolicy{
		"personal_photo": {Filename: "personal.jpg", ContentType: "image/jpeg"},
		"aadhar_photo":   {Filename: "aadhar.jpg", ContentType: "image/jpeg"},
		"cart_photo":     {Filename: "cart.jpg", ContentType: "image/jpeg"},
	},
}

var BankAccountEntity = Entity{
	Collection: "bank_accounts",
	KeyField:   "account_number",
	Category:   "bank",
	Slots: map[string]SlotPolicy{
		"passbook_photo": {Filename: "passbook.jpg", ContentType: "image/jpeg"},
	},
}

// SlotForFilename maps a stored object's filename back to its slot name.
func (e Entity) SlotForFilename(filename string) (string, bool) {
	for slot, policy := range e.Slots {
		if policy.Filename == filename {
			return slot, true
		}
	}
	return "", false
}

// EntityForCategory maps a stored object path segment back to its entity.
func EntityForCategory(category string) (Entity, bool) {
	switch category {
	case VendorEntity.Category:
		return VendorEntity, true
	case BankAccountEntity.Category:
		return BankAccountEntity, true
	}
	return Entity{}, false
}
