package models

import (
	"fmt"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// Millis is a unix-millisecond timestamp. It serializes to a plain JSON
// number and to a DynamoDB number attribute, so responses never leak an
// internal time representation.
type Millis struct {
	time.Time
}

// NewMillis creates a Millis truncated to millisecond precision.
func NewMillis(t time.Time) Millis {
	return Millis{time.UnixMilli(t.UnixMilli())}
}

// Now returns the current time as a Millis.
func Now() Millis {
	return NewMillis(time.Now())
}

// Before reports whether m is strictly earlier than other.
func (m Millis) Before(other Millis) bool {
	return m.UnixMilli() < other.UnixMilli()
}

// Equal reports whether two timestamps are the same millisecond.
func (m Millis) Equal(other Millis) bool {
	return m.UnixMilli() == other.UnixMilli()
}

// MarshalJSON implements json.Marshaler.
// It writes the time as a bare number of unix milliseconds.
func (m Millis) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatInt(m.UnixMilli(), 10)), nil
}

// UnmarshalJSON implements json.Unmarshaler.
// It accepts either a bare number or a quoted numeric string.
func (m *Millis) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}

	ms, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid millisecond timestamp %q: %w", s, err)
	}

	*m = Millis{time.UnixMilli(ms)}
	return nil
}

// MarshalDynamoDBAttributeValue implements attributevalue.Marshaler.
// It writes the time as a number attribute of unix milliseconds.
func (m Millis) MarshalDynamoDBAttributeValue() (types.AttributeValue, error) {
	return &types.AttributeValueMemberN{Value: strconv.FormatInt(m.UnixMilli(), 10)}, nil
}

// UnmarshalDynamoDBAttributeValue implements attributevalue.Unmarshaler.
// It accepts number or string attributes for compatibility with items
// written by earlier deployments that stored timestamps as strings.
func (m *Millis) UnmarshalDynamoDBAttributeValue(av types.AttributeValue) error {
	var raw string
	switch v := av.(type) {
	case *types.AttributeValueMemberN:
		raw = v.Value
	case *types.AttributeValueMemberS:
		raw = v.Value
	default:
		return fmt.Errorf("expected number AttributeValue, got %T", av)
	}

	ms, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid millisecond timestamp %q: %w", raw, err)
	}

	*m = Millis{time.UnixMilli(ms)}
	return nil
}
