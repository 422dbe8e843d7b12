package serde

import (
	"bytes"
	"encoding/base64"
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"
	"google.golang.org/protobuf/encoding/protowire"
)

func init() {
	Register("String", String)
	Register("Hex", Hex)
	Register("Base64", Base64)
	Register("Int32", Int32)
	Register("Int64", Int64)
	Register("UInt32", UInt32)
	Register("UInt64", UInt64)
	Register("UUIDBinary", UUIDBinary)
	Register("ProtobufRaw", ProtobufRaw)
	Register("JSON", JSON)
}

var errInvalidUTF8 = errors.New("invalid UTF-8")

func String(b []byte) (string, error) {
	if !utf8.Valid(b) {
		return "", errInvalidUTF8
	}
	return string(b), nil
}

// Hex renders upper-case byte pairs separated by spaces.
func Hex(b []byte) (string, error) { return hexString(b), nil }

func hexString(b []byte) string {
	h := strings.ToUpper(hex.EncodeToString(b))
	var sb strings.Builder
	sb.Grow(len(b) * 3)
	for i := 0; i < len(h); i += 2 {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(h[i : i+2])
	}
	return sb.String()
}

func Base64(b []byte) (string, error) { return base64.StdEncoding.EncodeToString(b), nil }

func fixed(b []byte, n int) error {
	if len(b) != n {
		return fmt.Errorf("want %d bytes, got %d", n, len(b))
	}
	return nil
}

func Int32(b []byte) (string, error) {
	if err := fixed(b, 4); err != nil {
		return "", err
	}
	return strconv.FormatInt(int64(int32(binary.BigEndian.Uint32(b))), 10), nil
}

func Int64(b []byte) (string, error) {
	if err := fixed(b, 8); err != nil {
		return "", err
	}
	return strconv.FormatInt(int64(binary.BigEndian.Uint64(b)), 10), nil
}

func UInt32(b []byte) (string, error) {
	if err := fixed(b, 4); err != nil {
		return "", err
	}
	return strconv.FormatUint(uint64(binary.BigEndian.Uint32(b)), 10), nil
}

func UInt64(b []byte) (string, error) {
	if err := fixed(b, 8); err != nil {
		return "", err
	}
	return strconv.FormatUint(binary.BigEndian.Uint64(b), 10), nil
}

func UUIDBinary(b []byte) (string, error) {
	id, err := uuid.FromBytes(b)
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

// JSON accepts only well-formed documents and returns them compacted.
func JSON(b []byte) (string, error) {
	var buf bytes.Buffer
	if err := json.Compact(&buf, b); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// ProtobufRaw decodes protobuf wire format without a schema, in the style of
// `protoc --decode_raw`.
func ProtobufRaw(b []byte) (string, error) {
	var sb strings.Builder
	if err := decodeRaw(b, 0, &sb); err != nil {
		return "", err
	}
	return strings.TrimRight(sb.String(), "\n"), nil
}

func decodeRaw(b []byte, depth int, sb *strings.Builder) error {
	if depth > 32 {
		return errors.New("protobuf nesting too deep")
	}
	pad := strings.Repeat("  ", depth)
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]
		switch typ {
		case protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return protowire.ParseError(n)
			}
			b = b[n:]
			fmt.Fprintf(sb, "%s%d: %d\n", pad, num, v)
		case protowire.Fixed32Type:
			v, n := protowire.ConsumeFixed32(b)
			if n < 0 {
				return protowire.ParseError(n)
			}
			b = b[n:]
			fmt.Fprintf(sb, "%s%d: 0x%08x\n", pad, num, v)
		case protowire.Fixed64Type:
			v, n := protowire.ConsumeFixed64(b)
			if n < 0 {
				return protowire.ParseError(n)
			}
			b = b[n:]
			fmt.Fprintf(sb, "%s%d: 0x%016x\n", pad, num, v)
		case protowire.BytesType:
			v, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return protowire.ParseError(n)
			}
			b = b[n:]
			writeBytesField(sb, pad, num, v, depth)
		case protowire.StartGroupType:
			v, n := protowire.ConsumeGroup(num, b)
			if n < 0 {
				return protowire.ParseError(n)
			}
			b = b[n:]
			fmt.Fprintf(sb, "%s%d {\n", pad, num)
			if err := decodeRaw(v, depth+1, sb); err != nil {
				return err
			}
			fmt.Fprintf(sb, "%s}\n", pad)
		default:
			return fmt.Errorf("unexpected wire type %d for field %d", typ, num)
		}
	}
	return nil
}

// Printable text wins over a nested message; otherwise try to parse a
// message and fall back to escaped bytes.
func writeBytesField(sb *strings.Builder, pad string, num protowire.Number, v []byte, depth int) {
	if len(v) > 0 && printable(v) {
		fmt.Fprintf(sb, "%s%d: %s\n", pad, num, strconv.Quote(string(v)))
		return
	}
	if len(v) > 0 {
		var nested strings.Builder
		if decodeRaw(v, depth+1, &nested) == nil {
			fmt.Fprintf(sb, "%s%d {\n%s%s}\n", pad, num, nested.String(), pad)
			return
		}
	}
	fmt.Fprintf(sb, "%s%d: %s\n", pad, num, strconv.Quote(string(v)))
}

func printable(b []byte) bool {
	if !utf8.Valid(b) {
		return false
	}
	for _, r := range string(b) {
		if !unicode.IsPrint(r) && !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}
