package notification

import (
	"fmt"

	"github.com/olahol/melody"
)

type Service interface {
	SendMessage(message string) error
}

// MelodyService broadcast pesan ke dashboard admin lewat websocket
type MelodyService struct {
	m *melody.Melody
}

func NewMelodyService(m *melody.Melody) *MelodyService {
	return &MelodyService{m: m}
}

func (s *MelodyService) SendMessage(message string) error {
	if s.m == nil {
		return fmt.Errorf("melody instance is nil")
	}
	return s.m.Broadcast([]byte(message))
}

// OrderMessageBuilder menyusun pesan notifikasi order baru
type OrderMessageBuilder struct {
	orderID uint
	total   int
}

func NewOrderMessageBuilder(orderID uint, total int) *OrderMessageBuilder {
	return &OrderMessageBuilder{
		orderID: orderID,
		total:   total,
	}
}

func (b *OrderMessageBuilder) Build() string {
	return fmt.Sprintf("🔔 Order baru #%d masuk, total Rp%d.", b.orderID, b.total)
}
