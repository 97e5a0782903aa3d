package content

import (
	"context"
	"fmt"

	"github.com/jhump/protoreflect/desc/protoparse"
	registry "github.com/suyash-naithani/apicurio-registry"
)

// protoFileName is the name the payload is parsed under; it shows up in
// parser error positions.
const protoFileName = "schema.proto"

type protobufValidator struct{}

func (protobufValidator) Type() registry.SchemaType {
	return registry.SchemaTypeProtobuf
}

func (protobufValidator) Validate(_ context.Context, schema string) error {
	parser := protoparse.Parser{
		Accessor: protoparse.FileContentsFromMap(map[string]string{
			protoFileName: schema,
		}),
	}

	fds, err := parser.ParseFiles(protoFileName)
	if err != nil {
		return fmt.Errorf("failed to parse protobuf schema: %w", err)
	}
	if len(fds) == 0 {
		return fmt.Errorf("protobuf schema produced no file descriptor")
	}

	return nil
}
