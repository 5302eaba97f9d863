package viewstate

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func TestInitialState(t *testing.T) {
	s := Initial()
	assert.Equal(t, ViewHome, s.View)
	assert.Equal(t, ModalNone, s.Modal)
	assert.Nil(t, s.Toast)
}

func TestNavigate(t *testing.T) {
	s := Initial()

	s = Reduce(s, Event{Type: EventNavigate, View: ViewBusiness}, now)
	assert.Equal(t, ViewBusiness, s.View)
	// Mặc định mở tab đăng ký
	assert.Equal(t, TabRegister, s.BusinessTab)

	// View không hợp lệ thì giữ nguyên state
	before := s
	s = Reduce(s, Event{Type: EventNavigate, View: View("settings")}, now)
	assert.Equal(t, before, s)
}

func TestNavigateClosesModalAndClearsSelection(t *testing.T) {
	s := Initial()
	s = Reduce(s, Event{Type: EventSelectStore, TargetID: "ST-1"}, now)
	require.Equal(t, ViewDetail, s.View)
	require.Equal(t, "ST-1", s.SelectedStoreID)

	s = Reduce(s, Event{Type: EventOpenModal, Modal: ModalConfirmBooking}, now)
	require.Equal(t, ModalConfirmBooking, s.Modal)

	s = Reduce(s, Event{Type: EventNavigate, View: ViewHome}, now)
	assert.Equal(t, ViewHome, s.View)
	assert.Equal(t, ModalNone, s.Modal)
	assert.Empty(t, s.SelectedStoreID)
}

func TestBusinessTabOnlyInBusinessView(t *testing.T) {
	s := Initial()

	// Đang ở home thì không đổi tab được
	s = Reduce(s, Event{Type: EventSetBusinessTab, BusinessTab: TabLogin}, now)
	assert.Empty(t, s.BusinessTab)

	s = Reduce(s, Event{Type: EventNavigate, View: ViewBusiness}, now)
	s = Reduce(s, Event{Type: EventSetBusinessTab, BusinessTab: TabLogin}, now)
	assert.Equal(t, TabLogin, s.BusinessTab)
}

func TestModals(t *testing.T) {
	tests := []struct {
		modal Modal
		valid bool
	}{
		{ModalConfirmBooking, true},
		{ModalApprove, true},
		{ModalReject, true},
		{ModalPurge, true},
		{Modal("settings"), false},
	}

	for _, tt := range tests {
		s := Reduce(Initial(), Event{Type: EventOpenModal, Modal: tt.modal, TargetID: "RQ-1"}, now)
		if tt.valid {
			assert.Equal(t, tt.modal, s.Modal)
			assert.Equal(t, "RQ-1", s.TargetID)
		} else {
			assert.Equal(t, ModalNone, s.Modal)
		}
	}

	s := Reduce(Initial(), Event{Type: EventOpenModal, Modal: ModalApprove, TargetID: "RQ-1"}, now)
	s = Reduce(s, Event{Type: EventCloseModal}, now)
	assert.Equal(t, ModalNone, s.Modal)
	assert.Empty(t, s.TargetID)
}

func TestBookingConfirmedNavigatesToTrack(t *testing.T) {
	s := Initial()
	s = Reduce(s, Event{Type: EventSelectStore, TargetID: "ST-1"}, now)
	s = Reduce(s, Event{Type: EventOpenModal, Modal: ModalConfirmBooking}, now)

	s = Reduce(s, Event{Type: EventBookingConfirmed}, now)
	assert.Equal(t, ViewTrack, s.View)
	assert.Equal(t, ModalNone, s.Modal)
	assert.Empty(t, s.SelectedStoreID)
}

func TestToastLifecycle(t *testing.T) {
	s := Reduce(Initial(), Event{Type: EventShowToast, Message: "Booking created", Kind: "success"}, now)
	require.NotNil(t, s.Toast)
	assert.Equal(t, "Booking created", s.Toast.Message)
	assert.Equal(t, now.Add(ToastTTL), s.Toast.ExpiresAt)

	// Chưa tới hạn thì còn hiển thị
	s = ExpireToast(s, now.Add(ToastTTL-time.Millisecond))
	assert.NotNil(t, s.Toast)

	// Đúng 3 giây thì tắt
	s = ExpireToast(s, now.Add(ToastTTL))
	assert.Nil(t, s.Toast)
}

func TestToastDefaultsAndClear(t *testing.T) {
	// Message rỗng thì không có toast
	s := Reduce(Initial(), Event{Type: EventShowToast}, now)
	assert.Nil(t, s.Toast)

	s = Reduce(Initial(), Event{Type: EventShowToast, Message: "hi"}, now)
	require.NotNil(t, s.Toast)
	assert.Equal(t, "success", s.Toast.Kind)

	s = Reduce(s, Event{Type: EventClearToast}, now)
	assert.Nil(t, s.Toast)
}

func TestStateIsSerializable(t *testing.T) {
	s := Reduce(Initial(), Event{Type: EventSelectStore, TargetID: "ST-1"}, now)
	s = Reduce(s, Event{Type: EventShowToast, Message: "hello"}, now)

	raw, err := json.Marshal(s)
	require.NoError(t, err)

	var restored State
	require.NoError(t, json.Unmarshal(raw, &restored))
	assert.Equal(t, s.View, restored.View)
	assert.Equal(t, s.SelectedStoreID, restored.SelectedStoreID)
	require.NotNil(t, restored.Toast)
	assert.Equal(t, "hello", restored.Toast.Message)
}

func TestReduceIsPure(t *testing.T) {
	s := Initial()
	before := s
	_ = Reduce(s, Event{Type: EventNavigate, View: ViewAdmin}, now)
	assert.Equal(t, before, s, "Reduce mutated its input")
}
