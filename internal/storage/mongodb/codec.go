package mongodb

import (
	"reflect"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsoncodec"
	"go.mongodb.org/mongo-driver/bson/bsonrw"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

var tUUID = reflect.TypeOf(uuid.UUID{})

// uuidCodec stores uuid.UUID as BSON binary subtype 4 instead of the default
// generic byte array.
type uuidCodec struct{}

func (uuidCodec) EncodeValue(_ bsoncodec.EncodeContext, vw bsonrw.ValueWriter, val reflect.Value) error {
	if !val.IsValid() || val.Type() != tUUID {
		return bsoncodec.ValueEncoderError{Name: "uuidCodec", Types: []reflect.Type{tUUID}, Received: val}
	}

	u := val.Interface().(uuid.UUID)
	return vw.WriteBinaryWithSubtype(u[:], bsontype.BinaryUUID)
}

func (uuidCodec) DecodeValue(_ bsoncodec.DecodeContext, vr bsonrw.ValueReader, val reflect.Value) error {
	if !val.CanSet() || val.Type() != tUUID {
		return bsoncodec.ValueDecoderError{Name: "uuidCodec", Types: []reflect.Type{tUUID}, Received: val}
	}

	if vr.Type() == bsontype.Null {
		val.Set(reflect.ValueOf(uuid.Nil))
		return vr.ReadNull()
	}

	data, subtype, err := vr.ReadBinary()
	if err != nil {
		return err
	}
	if subtype != bsontype.BinaryUUID && subtype != bsontype.BinaryUUIDOld {
		return bsoncodec.ValueDecoderError{Name: "uuidCodec", Types: []reflect.Type{tUUID}, Received: val}
	}

	u, err := uuid.FromBytes(data)
	if err != nil {
		return err
	}

	val.Set(reflect.ValueOf(u))
	return nil
}

// Registry returns the default BSON registry extended with the UUID codec.
func Registry() *bsoncodec.Registry {
	reg := bson.NewRegistry()
	reg.RegisterTypeEncoder(tUUID, uuidCodec{})
	reg.RegisterTypeDecoder(tUUID, uuidCodec{})

	return reg
}
