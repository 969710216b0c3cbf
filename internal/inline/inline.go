// Package inline embeds small uploaded files directly inside a record's
// serialized text instead of referencing them externally. A payload is
// produced only when the file is strictly below the caller's threshold;
// larger files keep metadata only.
package inline

import (
	"encoding/base64"
	"fmt"
)

// Payload is a self-contained encoded copy of an uploaded file, small enough
// to live inside the containing record.
type Payload struct {
	Data     string `json:"data"`
	MimeType string `json:"mimeType"`
}

// Encode returns an inline payload for data when len(data) < thresholdBytes,
// and nil otherwise. A payload at exactly the threshold is not produced.
func Encode(data []byte, mimeType string, thresholdBytes int64) *Payload {
	if int64(len(data)) >= thresholdBytes {
		return nil
	}
	return &Payload{
		Data:     base64.StdEncoding.EncodeToString(data),
		MimeType: mimeType,
	}
}

// Decode losslessly reconstructs the original byte sequence.
func (p *Payload) Decode() ([]byte, error) {
	data, err := base64.StdEncoding.DecodeString(p.Data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode inline payload: %w", err)
	}
	return data, nil
}

// Size returns the decoded size in bytes without decoding.
func (p *Payload) Size() int64 {
	n := int64(len(p.Data)) / 4 * 3
	for i := len(p.Data) - 1; i >= 0 && p.Data[i] == '='; i-- {
		n--
	}
	return n
}
