package proto

import (
	"reflect"

	protov2 "google.golang.org/protobuf/proto"
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	descriptorpb "google.golang.org/protobuf/types/descriptorpb"
	timestamppb "google.golang.org/protobuf/types/known/timestamppb"
)

// File_users_proto describes api/users.proto. It is registered in
// protoregistry.GlobalFiles when the package is initialised.
var File_users_proto protoreflect.FileDescriptor

const (
	optional = descriptorpb.FieldDescriptorProto_LABEL_OPTIONAL
	repeated = descriptorpb.FieldDescriptorProto_LABEL_REPEATED

	typeString  = descriptorpb.FieldDescriptorProto_TYPE_STRING
	typeInt32   = descriptorpb.FieldDescriptorProto_TYPE_INT32
	typeMessage = descriptorpb.FieldDescriptorProto_TYPE_MESSAGE
)

func field(name, jsonName string, number int32, label descriptorpb.FieldDescriptorProto_Label, typ descriptorpb.FieldDescriptorProto_Type, typeName string) *descriptorpb.FieldDescriptorProto {
	f := &descriptorpb.FieldDescriptorProto{
		Name:     protov2.String(name),
		JsonName: protov2.String(jsonName),
		Number:   protov2.Int32(number),
		Label:    label.Enum(),
		Type:     typ.Enum(),
	}
	if typeName != "" {
		f.TypeName = protov2.String(typeName)
	}
	return f
}

func message(name string, fields ...*descriptorpb.FieldDescriptorProto) *descriptorpb.DescriptorProto {
	return &descriptorpb.DescriptorProto{Name: protov2.String(name), Field: fields}
}

func method(name, in, out string) *descriptorpb.MethodDescriptorProto {
	return &descriptorpb.MethodDescriptorProto{
		Name:       protov2.String(name),
		InputType:  protov2.String(".users." + in),
		OutputType: protov2.String(".users." + out),
	}
}

// usersFileDescriptor mirrors api/users.proto. Message order matches
// file_users_proto_goTypes.
func usersFileDescriptor() *descriptorpb.FileDescriptorProto {
	const (
		user      = ".users.User"
		timestamp = ".google.protobuf.Timestamp"
	)
	return &descriptorpb.FileDescriptorProto{
		Name:       protov2.String("users.proto"),
		Package:    protov2.String("users"),
		Dependency: []string{"google/protobuf/timestamp.proto"},
		Syntax:     protov2.String("proto3"),
		Options: &descriptorpb.FileOptions{
			GoPackage: protov2.String("github.com/dmitrijs2005/usersrpc/internal/proto"),
		},
		MessageType: []*descriptorpb.DescriptorProto{
			message("User",
				field("id", "id", 1, optional, typeString, ""),
				field("name", "name", 2, optional, typeString, ""),
				field("email", "email", 3, optional, typeString, ""),
				field("password", "password", 4, optional, typeString, ""),
				field("created_at", "createdAt", 5, optional, typeMessage, timestamp),
				field("updated_at", "updatedAt", 6, optional, typeMessage, timestamp),
			),
			message("CreateUserRequest",
				field("user", "user", 1, optional, typeMessage, user),
			),
			message("CreateUserResponse",
				field("user", "user", 1, optional, typeMessage, user),
				field("message", "message", 2, optional, typeString, ""),
			),
			message("GetUsersRequest",
				field("page", "page", 1, optional, typeInt32, ""),
				field("page_size", "pageSize", 2, optional, typeInt32, ""),
			),
			message("GetUsersResponse",
				field("users", "users", 1, repeated, typeMessage, user),
				field("total_count", "totalCount", 2, optional, typeInt32, ""),
			),
			message("GetUserByIDRequest",
				field("id", "id", 1, optional, typeString, ""),
			),
			message("GetUserByIDResponse",
				field("user", "user", 1, optional, typeMessage, user),
			),
			message("UpdateUserRequest",
				field("user", "user", 1, optional, typeMessage, user),
			),
			message("UpdateUserResponse",
				field("user", "user", 1, optional, typeMessage, user),
				field("message", "message", 2, optional, typeString, ""),
			),
			message("DeleteUserRequest",
				field("id", "id", 1, optional, typeString, ""),
			),
			message("DeleteUserResponse",
				field("id", "id", 1, optional, typeString, ""),
				field("message", "message", 2, optional, typeString, ""),
			),
		},
		Service: []*descriptorpb.ServiceDescriptorProto{{
			Name: protov2.String("Users"),
			Method: []*descriptorpb.MethodDescriptorProto{
				method("CreateUser", "CreateUserRequest", "CreateUserResponse"),
				method("GetUsers", "GetUsersRequest", "GetUsersResponse"),
				method("GetUserByID", "GetUserByIDRequest", "GetUserByIDResponse"),
				method("UpdateUser", "UpdateUserRequest", "UpdateUserResponse"),
				method("DeleteUser", "DeleteUserRequest", "DeleteUserResponse"),
			},
		}},
	}
}

var file_users_proto_rawDesc = mustMarshal(usersFileDescriptor())

func mustMarshal(fd *descriptorpb.FileDescriptorProto) []byte {
	b, err := protov2.MarshalOptions{Deterministic: true}.Marshal(fd)
	if err != nil {
		panic("users.proto: " + err.Error())
	}
	return b
}

var file_users_proto_msgTypes = make([]protoimpl.MessageInfo, 11)
var file_users_proto_goTypes = []any{
	(*User)(nil),                  // 0: users.User
	(*CreateUserRequest)(nil),     // 1: users.CreateUserRequest
	(*CreateUserResponse)(nil),    // 2: users.CreateUserResponse
	(*GetUsersRequest)(nil),       // 3: users.GetUsersRequest
	(*GetUsersResponse)(nil),      // 4: users.GetUsersResponse
	(*GetUserByIDRequest)(nil),    // 5: users.GetUserByIDRequest
	(*GetUserByIDResponse)(nil),   // 6: users.GetUserByIDResponse
	(*UpdateUserRequest)(nil),     // 7: users.UpdateUserRequest
	(*UpdateUserResponse)(nil),    // 8: users.UpdateUserResponse
	(*DeleteUserRequest)(nil),     // 9: users.DeleteUserRequest
	(*DeleteUserResponse)(nil),    // 10: users.DeleteUserResponse
	(*timestamppb.Timestamp)(nil), // 11: google.protobuf.Timestamp
}
var file_users_proto_depIdxs = []int32{
	11, // 0: users.User.created_at:type_name -> google.protobuf.Timestamp
	11, // 1: users.User.updated_at:type_name -> google.protobuf.Timestamp
	0,  // 2: users.CreateUserRequest.user:type_name -> users.User
	0,  // 3: users.CreateUserResponse.user:type_name -> users.User
	0,  // 4: users.GetUsersResponse.users:type_name -> users.User
	0,  // 5: users.GetUserByIDResponse.user:type_name -> users.User
	0,  // 6: users.UpdateUserRequest.user:type_name -> users.User
	0,  // 7: users.UpdateUserResponse.user:type_name -> users.User
	1,  // 8: users.Users.CreateUser:input_type -> users.CreateUserRequest
	3,  // 9: users.Users.GetUsers:input_type -> users.GetUsersRequest
	5,  // 10: users.Users.GetUserByID:input_type -> users.GetUserByIDRequest
	7,  // 11: users.Users.UpdateUser:input_type -> users.UpdateUserRequest
	9,  // 12: users.Users.DeleteUser:input_type -> users.DeleteUserRequest
	2,  // 13: users.Users.CreateUser:output_type -> users.CreateUserResponse
	4,  // 14: users.Users.GetUsers:output_type -> users.GetUsersResponse
	6,  // 15: users.Users.GetUserByID:output_type -> users.GetUserByIDResponse
	8,  // 16: users.Users.UpdateUser:output_type -> users.UpdateUserResponse
	10, // 17: users.Users.DeleteUser:output_type -> users.DeleteUserResponse
	13, // [13:18] is the sub-list for method output_type
	8,  // [8:13] is the sub-list for method input_type
	8,  // [8:8] is the sub-list for extension type_name
	8,  // [8:8] is the sub-list for extension extendee
	0,  // [0:8] is the sub-list for field type_name
}

func init() { file_users_proto_init() }
func file_users_proto_init() {
	if File_users_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: file_users_proto_rawDesc,
			NumEnums:      0,
			NumMessages:   11,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_users_proto_goTypes,
		DependencyIndexes: file_users_proto_depIdxs,
		MessageInfos:      file_users_proto_msgTypes,
	}.Build()
	File_users_proto = out.File
	file_users_proto_goTypes = nil
	file_users_proto_depIdxs = nil
}
