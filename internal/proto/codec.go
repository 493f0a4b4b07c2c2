package proto

import (
	"fmt"

	"google.golang.org/grpc/encoding"
	"google.golang.org/protobuf/encoding/protojson"
	protov2 "google.golang.org/protobuf/proto"
)

// JSONCodecName is the optional gRPC content-subtype for clients that prefer
// the protobuf JSON mapping over the default binary encoding.
const JSONCodecName = "json"

var (
	jsonMarshal   = protojson.MarshalOptions{UseProtoNames: true}
	jsonUnmarshal = protojson.UnmarshalOptions{DiscardUnknown: true}
)

type jsonCodec struct{}

func (jsonCodec) Marshal(v any) ([]byte, error) {
	m, ok := v.(protov2.Message)
	if !ok {
		return nil, fmt.Errorf("json codec marshal: %T is not a proto message", v)
	}
	b, err := jsonMarshal.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("json codec marshal %T: %w", v, err)
	}
	return b, nil
}

func (jsonCodec) Unmarshal(data []byte, v any) error {
	m, ok := v.(protov2.Message)
	if !ok {
		return fmt.Errorf("json codec unmarshal: %T is not a proto message", v)
	}
	if len(data) == 0 {
		return nil
	}
	if err := jsonUnmarshal.Unmarshal(data, m); err != nil {
		return fmt.Errorf("json codec unmarshal %T: %w", v, err)
	}
	return nil
}

func (jsonCodec) Name() string {
	return JSONCodecName
}

func init() {
	encoding.RegisterCodec(jsonCodec{})
}
