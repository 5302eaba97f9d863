// server/internal/market/token.go
package market

import (
	"crypto/rand"
	"fmt"
	"strings"
)

// DisplayIDPrefix đứng trước mọi token tra cứu booking.
const DisplayIDPrefix = "CH-"

const base36Chars = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// NewDisplayID sinh token dạng "CH-XXXXX" với 5 ký tự base-36 viết hoa.
// Token này cho khách tra cứu booking; tính duy nhất được đảm bảo bằng
// unique index + retry khi ghi (xem booking handler).
func NewDisplayID() string {
	b := make([]byte, 5)
	if _, err := rand.Read(b); err != nil {
		// crypto/rand không đọc được là lỗi hệ thống, không có fallback hợp lý
		panic(fmt.Sprintf("market: rand.Read failed: %v", err))
	}
	var sb strings.Builder
	sb.WriteString(DisplayIDPrefix)
	for _, c := range b {
		sb.WriteByte(base36Chars[int(c)%len(base36Chars)])
	}
	return sb.String()
}

// NormalizeDisplayID chuẩn hóa token người dùng nhập khi tra cứu:
// bỏ khoảng trắng thừa và viết hoa toàn bộ ("ch-ab12c" -> "CH-AB12C").
func NormalizeDisplayID(token string) string {
	return strings.ToUpper(strings.TrimSpace(token))
}
