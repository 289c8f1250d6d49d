package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// CarInput is the car payload the storefront pages post when a car is
// favorited or viewed. Clients send it in several shapes, so brand and
// price are normalized while decoding.
type CarInput struct {
	ID       int64     `json:"id" binding:"required"`
	Brand    BrandName `json:"brand"`
	Model    string    `json:"model"`
	Price    Price     `json:"price"`
	Year     int       `json:"year"`
	ImageURL string    `json:"image_url,omitempty"`
}

// BrandName accepts either a plain string or an object with a "name" field.
type BrandName string

func (b *BrandName) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*b = ""
		return nil
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*b = BrandName(s)
		return nil
	case '{':
		var obj struct {
			Name string `json:"name"`
		}
		if err := json.Unmarshal(data, &obj); err != nil {
			return err
		}
		*b = BrandName(obj.Name)
		return nil
	}

	return fmt.Errorf("brand: unsupported value %s", data)
}

// Price is a whole-ruble amount. The catalog API serializes decimals as
// strings ("3000000.00"), older pages send plain numbers.
type Price int64

func (p *Price) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*p = 0
		return nil
	}

	raw := string(data)
	if data[0] == '"' {
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		raw = strings.ReplaceAll(strings.TrimSpace(raw), ",", ".")
	}

	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fmt.Errorf("price: %w", err)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return fmt.Errorf("price: %s is not a number", raw)
	}
	f = math.Round(f)
	// 2^63 itself does not fit
	if f < math.MinInt64 || f >= math.MaxInt64 {
		return fmt.Errorf("price: %s is out of range", raw)
	}
	*p = Price(f)
	return nil
}
