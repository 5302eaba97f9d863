// server/internal/watch/watcher.go
package watch

import (
	"context"
	"encoding/json"
	"log"

	"cityhub-marketplace-api-server/internal/database"
	"cityhub-marketplace-api-server/internal/socket"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// SnapshotMessage là payload đẩy xuống client qua WebSocket:
// mỗi thay đổi trên một collection sinh ra một snapshot TOÀN BỘ collection,
// client ghi đè mirror cục bộ của nó bằng snapshot này.
type SnapshotMessage struct {
	Type       string      `json:"type"` // luôn là "snapshot"
	Collection string      `json:"collection"`
	Data       interface{} `json:"data"`
}

// Watcher theo dõi change stream của các collection công khai
// và broadcast snapshot qua hub.
type Watcher struct {
	DB  *mongo.Database
	Hub *socket.Hub
}

// watchedCollections là các collection mà client mirror trực tiếp.
// user_bookings và vendor_creds không bao giờ được đẩy xuống client.
var watchedCollections = []string{
	database.CollStores,
	database.CollBookings,
	database.CollRequests,
}

// Start mở một change stream cho từng collection. Mỗi stream chạy trong
// một goroutine riêng; lỗi stream chỉ được log, không retry (client vẫn
// nhận snapshot đầy đủ ở lần kết nối sau).
func (w *Watcher) Start(ctx context.Context) {
	for _, name := range watchedCollections {
		go w.watchCollection(ctx, name)
	}
}

func (w *Watcher) watchCollection(ctx context.Context, name string) {
	stream, err := w.DB.Collection(name).Watch(ctx, mongo.Pipeline{})
	if err != nil {
		log.Printf("Failed to open change stream for %s: %v", name, err)
		return
	}
	defer stream.Close(ctx)

	log.Printf("Watching collection %s", name)
	for stream.Next(ctx) {
		if err := w.BroadcastSnapshot(ctx, name); err != nil {
			log.Printf("Failed to broadcast %s snapshot: %v", name, err)
		}
	}
	if err := stream.Err(); err != nil && ctx.Err() == nil {
		log.Printf("Change stream for %s closed: %v", name, err)
	}
}

// BroadcastSnapshot đọc lại toàn bộ collection và gửi cho mọi client.
func (w *Watcher) BroadcastSnapshot(ctx context.Context, name string) error {
	message, err := w.SnapshotFor(ctx, name)
	if err != nil {
		return err
	}
	w.Hub.Broadcast(message)
	return nil
}

// SnapshotFor dựng payload snapshot hiện tại của một collection.
// Cũng được dùng để gửi trạng thái ban đầu khi một client vừa kết nối.
func (w *Watcher) SnapshotFor(ctx context.Context, name string) ([]byte, error) {
	cursor, err := w.DB.Collection(name).Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	docs := []bson.M{}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	return json.Marshal(SnapshotMessage{
		Type:       "snapshot",
		Collection: name,
		Data:       docs,
	})
}

// InitialCollections liệt kê các collection cần gửi snapshot khi client mới kết nối.
func InitialCollections() []string {
	return watchedCollections
}
