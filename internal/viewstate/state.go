// server/internal/viewstate/state.go
package viewstate

import "time"

// View là màn hình chính đang hiển thị.
type View string

const (
	ViewHome     View = "home"
	ViewBusiness View = "business"
	ViewAdmin    View = "admin"
	ViewDetail   View = "detail"
	ViewMerchant View = "merchant"
	ViewTrack    View = "track"
)

// Modal là overlay đang mở (rỗng nghĩa là không có modal nào).
type Modal string

const (
	ModalNone           Modal = ""
	ModalConfirmBooking Modal = "confirm-booking"
	ModalApprove        Modal = "approve"
	ModalReject         Modal = "reject"
	ModalPurge          Modal = "purge"
)

// BusinessTab là sub-state của màn business.
type BusinessTab string

const (
	TabRegister BusinessTab = "register"
	TabLogin    BusinessTab = "login"
)

// ToastTTL là thời gian hiển thị cố định của một toast.
const ToastTTL = 3 * time.Second

// Toast là thông báo tạm thời, tự tắt sau ToastTTL.
type Toast struct {
	Message   string    `json:"message"`
	Kind      string    `json:"kind"` // success, error
	ExpiresAt time.Time `json:"expiresAt"`
}

// State là toàn bộ trạng thái UI của một phiên, tuần tự hóa được
// và độc lập với mọi tầng render.
type State struct {
	View        View        `json:"view"`
	Modal       Modal       `json:"modal,omitempty"`
	BusinessTab BusinessTab `json:"businessTab,omitempty"`

	// Ngữ cảnh của màn hiện tại
	SelectedStoreID string `json:"selectedStoreID,omitempty"`
	TargetID        string `json:"targetID,omitempty"` // request/store mà modal admin đang thao tác

	Toast *Toast `json:"toast,omitempty"`
}

// Initial là trạng thái sau khi bootstrap identity và profile xong.
func Initial() State {
	return State{View: ViewHome}
}

func ValidView(v View) bool {
	switch v {
	case ViewHome, ViewBusiness, ViewAdmin, ViewDetail, ViewMerchant, ViewTrack:
		return true
	}
	return false
}

func ValidModal(m Modal) bool {
	switch m {
	case ModalConfirmBooking, ModalApprove, ModalReject, ModalPurge:
		return true
	}
	return false
}
