package models

import "strings"

// Patched mengembalikan salinan List dengan field dari incoming diterapkan.
// ID dan UserID tidak pernah berubah lewat patch.
func (l List) Patched(inc ListIncoming) List {
	patched := l
	patched.Title = strings.TrimSpace(inc.Title)
	return patched
}

// Patched mengembalikan salinan Task dengan field dari incoming diterapkan.
// Hanya field yang dikirim (pointer != nil) yang diganti, sisanya
// mempertahankan nilai lama. ListID tidak bisa dipindah lewat patch,
// karena validasi kepemilikan list hanya terjadi saat create.
func (t Task) Patched(inc TaskIncoming) Task {
	patched := t
	if inc.Title != nil {
		patched.Title = strings.TrimSpace(*inc.Title)
	}
	if inc.Priority != nil {
		patched.Priority = *inc.Priority
	}
	if inc.DueDate != nil {
		patched.DueDate = inc.DueDate
	}
	if inc.IsDone != nil {
		patched.IsDone = *inc.IsDone
	}
	return patched
}
