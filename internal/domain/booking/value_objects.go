package booking

import "strings"

const MaxMessageLength = 500

type Message struct {
	value string
}

func NewMessage(s string) (Message, error) {
	s = strings.TrimSpace(s)
	if len([]rune(s)) > MaxMessageLength {
		return Message{}, ErrMessageTooLong
	}
	return Message{value: s}, nil
}

func (m Message) String() string {
	return m.value
}

func (m Message) IsEmpty() bool {
	return m.value == ""
}

type Money struct {
	cents int64
}

func NewMoney(cents int64) Money {
	return Money{cents: cents}
}

func (m Money) Cents() int64 {
	return m.cents
}
