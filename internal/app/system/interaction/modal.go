package interaction

// Modal identifies which dialog, if any, a console has open. Only one value
// is held at a time, so at most one dialog can be open.
type Modal int

const (
	ModalNone Modal = iota
	ModalAdd
	ModalEdit
	ModalDelete
)

// String returns the lowercase name used by templates and logs.
func (m Modal) String() string {
	switch m {
	case ModalAdd:
		return "add"
	case ModalEdit:
		return "edit"
	case ModalDelete:
		return "delete"
	default:
		return "none"
	}
}

// needsSelection reports whether the modal operates on a selected record.
func (m Modal) needsSelection() bool {
	return m == ModalEdit || m == ModalDelete
}
