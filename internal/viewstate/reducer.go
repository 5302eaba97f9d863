// server/internal/viewstate/reducer.go
package viewstate

import "time"

// EventType phân loại các event điều khiển state machine.
type EventType string

const (
	EventNavigate         EventType = "navigate"
	EventOpenModal        EventType = "open-modal"
	EventCloseModal       EventType = "close-modal"
	EventSetBusinessTab   EventType = "set-business-tab"
	EventSelectStore      EventType = "select-store"
	EventBookingConfirmed EventType = "booking-confirmed"
	EventShowToast        EventType = "show-toast"
	EventClearToast       EventType = "clear-toast"
)

// Event là một transition do người dùng hoặc workflow phát ra.
type Event struct {
	Type EventType `json:"type"`

	View        View        `json:"view,omitempty"`
	Modal       Modal       `json:"modal,omitempty"`
	BusinessTab BusinessTab `json:"businessTab,omitempty"`
	TargetID    string      `json:"targetID,omitempty"`

	Message string `json:"message,omitempty"`
	Kind    string `json:"kind,omitempty"`
}

// Reduce áp một event lên state và trả về state mới. Thuần túy:
// không side effect, event không hợp lệ thì giữ nguyên state.
// now được truyền vào để deadline của toast kiểm thử được.
func Reduce(s State, e Event, now time.Time) State {
	switch e.Type {
	case EventNavigate:
		if !ValidView(e.View) {
			return s
		}
		s.View = e.View
		s.Modal = ModalNone
		s.TargetID = ""
		if e.View == ViewBusiness && s.BusinessTab == "" {
			s.BusinessTab = TabRegister
		}
		if e.View != ViewDetail {
			s.SelectedStoreID = ""
		}

	case EventOpenModal:
		if !ValidModal(e.Modal) {
			return s
		}
		s.Modal = e.Modal
		s.TargetID = e.TargetID

	case EventCloseModal:
		s.Modal = ModalNone
		s.TargetID = ""

	case EventSetBusinessTab:
		if s.View != ViewBusiness {
			return s
		}
		if e.BusinessTab != TabRegister && e.BusinessTab != TabLogin {
			return s
		}
		s.BusinessTab = e.BusinessTab

	case EventSelectStore:
		if e.TargetID == "" {
			return s
		}
		s.View = ViewDetail
		s.Modal = ModalNone
		s.SelectedStoreID = e.TargetID

	case EventBookingConfirmed:
		// Booking thành công luôn đưa người dùng sang màn tra cứu.
		s.View = ViewTrack
		s.Modal = ModalNone
		s.SelectedStoreID = ""

	case EventShowToast:
		if e.Message == "" {
			return s
		}
		kind := e.Kind
		if kind == "" {
			kind = "success"
		}
		s.Toast = &Toast{Message: e.Message, Kind: kind, ExpiresAt: now.Add(ToastTTL)}

	case EventClearToast:
		s.Toast = nil
	}

	return s
}

// ExpireToast xóa toast nếu đã quá hạn hiển thị.
func ExpireToast(s State, now time.Time) State {
	if s.Toast != nil && !now.Before(s.Toast.ExpiresAt) {
		s.Toast = nil
	}
	return s
}
