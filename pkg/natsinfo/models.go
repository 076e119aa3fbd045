package natsinfo

import (
	"encoding/json"
	"time"

	"github.com/Cba40/blogCBA/pkg/dateutils"
)

type ContactMessage struct {
	Subject    string
	Content    string
	ReceivedAt time.Time
}

type contactMessageDTO struct {
	Subject    string `json:"subject"`
	Content    string `json:"content"`
	ReceivedAt string `json:"received_at"`
}

func (m *ContactMessage) Marshal() ([]byte, error) {
	return json.Marshal(&contactMessageDTO{
		Subject:    m.Subject,
		Content:    m.Content,
		ReceivedAt: dateutils.ToISO(m.ReceivedAt),
	})
}

func (m *ContactMessage) Unmarshal(data []byte) error {
	var dto contactMessageDTO

	if err := json.Unmarshal(data, &dto); err != nil {
		return err
	}

	m.Subject = dto.Subject
	m.Content = dto.Content

	receivedAt, err := dateutils.ParseISO(dto.ReceivedAt)
	if err != nil {
		return err
	}
	m.ReceivedAt = receivedAt

	return nil
}
