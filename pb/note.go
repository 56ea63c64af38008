// Package pb は、Note を google.protobuf.Struct としてシリアライズします。
package pb

import (
	"math"

	"github.com/but80/notefreq/pitch/enums"
	"github.com/but80/notefreq/pitch/log"
	"github.com/but80/notefreq/pitch/note"
	"github.com/but80/notefreq/pitch/western"
	"github.com/golang/protobuf/jsonpb"
	"github.com/golang/protobuf/proto"
	structpb "github.com/golang/protobuf/ptypes/struct"
	"github.com/pkg/errors"
)

func numberValue(v float64) *structpb.Value {
	return &structpb.Value{Kind: &structpb.Value_NumberValue{NumberValue: v}}
}

func stringValue(v string) *structpb.Value {
	return &structpb.Value{Kind: &structpb.Value_StringValue{StringValue: v}}
}

func boolValue(v bool) *structpb.Value {
	return &structpb.Value{Kind: &structpb.Value_BoolValue{BoolValue: v}}
}

// ToStruct は、Note を Struct に変換します。フィールド名は JSON と同じです。
func ToStruct(n note.Note) *structpb.Struct {
	f := map[string]*structpb.Value{
		"hertz": numberValue(n.Hertz),
	}
	if d := n.Descriptor; d != nil {
		f["A"] = numberValue(d.A)
		f["letter"] = stringValue(d.Letter.String())
		f["letterIndex"] = numberValue(float64(d.LetterIndex))
		f["modifier"] = stringValue(d.Modifier.String())
		f["octaveIndex"] = numberValue(float64(d.OctaveIndex))
		f["isSharp"] = boolValue(d.IsSharp)
		f["isFlat"] = boolValue(d.IsFlat)
		f["isNatural"] = boolValue(d.IsNatural)
		f["name"] = stringValue(d.Name)
		f["nameSimple"] = stringValue(d.NameSimple)
		f["nameIndex"] = numberValue(float64(d.NameIndex))
		f["pianoKeyIndex"] = numberValue(float64(d.PianoKeyIndex))
		f["tuning"] = stringValue(d.Tuning.String())
	}
	if n.Key != nil {
		f["key"] = &structpb.Value{Kind: &structpb.Value_StructValue{StructValue: ToStruct(*n.Key)}}
	}
	return &structpb.Struct{Fields: f}
}

type fields map[string]*structpb.Value

func (f fields) getNumber(name string) (float64, bool) {
	v, ok := f[name].GetKind().(*structpb.Value_NumberValue)
	if !ok {
		return 0, false
	}
	return v.NumberValue, true
}

func (f fields) getInt(name string) (int, bool) {
	v, ok := f.getNumber(name)
	if !ok || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return int(v), true
}

func (f fields) getString(name string) string {
	return f[name].GetStringValue()
}

func (f fields) getBool(name string) bool {
	return f[name].GetBoolValue()
}

func (f fields) attributes() western.Attributes {
	a := western.Attributes{
		Letter:   f.getString("letter"),
		Modifier: f.getString("modifier"),
	}
	if o, ok := f.getInt("octaveIndex"); ok {
		a.Octave = western.Octave(o)
	}
	a.A, _ = f.getNumber("A")
	a.Tuning, _ = enums.ParseTuning(f.getString("tuning"))
	return a
}

var descriptorFields = []string{
	"A", "letter", "letterIndex", "modifier", "octaveIndex",
	"isSharp", "isFlat", "isNatural",
	"name", "nameSimple", "nameIndex", "pianoKeyIndex", "tuning",
}

func (f fields) hasDescriptor() bool {
	for _, name := range descriptorFields {
		if _, ok := f[name]; ok {
			return true
		}
	}
	return false
}

func (f fields) descriptor() *western.Descriptor {
	if !f.hasDescriptor() {
		return nil
	}
	d := &western.Descriptor{
		IsSharp:    f.getBool("isSharp"),
		IsFlat:     f.getBool("isFlat"),
		IsNatural:  f.getBool("isNatural"),
		Name:       f.getString("name"),
		NameSimple: f.getString("nameSimple"),
	}
	d.A, _ = f.getNumber("A")
	d.Letter, _ = enums.ParseLetter(f.getString("letter"))
	d.LetterIndex, _ = f.getInt("letterIndex")
	d.Modifier, _ = enums.ParseModifier(f.getString("modifier"))
	d.OctaveIndex, _ = f.getInt("octaveIndex")
	d.NameIndex, _ = f.getInt("nameIndex")
	d.PianoKeyIndex, _ = f.getInt("pianoKeyIndex")
	d.Tuning, _ = enums.ParseTuning(f.getString("tuning"))
	return d
}

// consistent は、構築済みの音名の情報が12音の表と矛盾していないかを返します。
func consistent(d *western.Descriptor) bool {
	if d == nil {
		return true
	}
	ok := true
	if d.NameIndex < 0 || len(western.Names) <= d.NameIndex || western.Names[d.NameIndex] != d.Name {
		ok = false
	}
	if !d.Letter.IsValid() || d.Name != d.Letter.String()+d.Modifier.String() {
		ok = false
	}
	return ok
}

// FromStruct は、Struct から Note を復元します。
// hertz を持つ Struct は構築済みの音としてそのまま複製し、
// 持たない Struct は部分的な指定として EDO12 で解決します。
func FromStruct(s *structpb.Struct) (note.Note, error) {
	if s == nil {
		return note.Note{}, errors.New("nil struct")
	}
	f := fields(s.Fields)
	hertz, ok := f.getNumber("hertz")
	if !ok {
		return note.EDO12(note.Attrs(f.attributes())), nil
	}
	n := note.Note{
		Descriptor: f.descriptor(),
		Hertz:      hertz,
	}
	if !consistent(n.Descriptor) {
		log.Warnf("note %q does not match the chromatic name table", n.Name)
	}
	if ks := f["key"].GetStructValue(); ks != nil {
		k, err := FromStruct(ks)
		if err != nil {
			return note.Note{}, errors.Wrap(err, "decoding key")
		}
		n.Key = &k
	}
	return note.New(note.Prebuilt(n)), nil
}

// Marshal は、Note を protobuf のバイナリ形式にエンコードします。
func Marshal(n note.Note) ([]byte, error) {
	b, err := proto.Marshal(ToStruct(n))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return b, nil
}

// Unmarshal は、protobuf のバイナリ形式から Note を復元します。
func Unmarshal(b []byte) (note.Note, error) {
	var s structpb.Struct
	if err := proto.Unmarshal(b, &s); err != nil {
		return note.Note{}, errors.WithStack(err)
	}
	return FromStruct(&s)
}

// MarshalJSON は、Struct の JSON 表現を返します。
func MarshalJSON(n note.Note) (string, error) {
	m := jsonpb.Marshaler{Indent: "  "}
	s, err := m.MarshalToString(ToStruct(n))
	if err != nil {
		return "", errors.WithStack(err)
	}
	return s, nil
}
