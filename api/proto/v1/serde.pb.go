package pb

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)

	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type MetadataRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *MetadataRequest) Reset() {
	*x = MetadataRequest{}
	mi := &file_v1_serde_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *MetadataRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*MetadataRequest) ProtoMessage() {}

func (x *MetadataRequest) ProtoReflect() protoreflect.Message {
	mi := &file_v1_serde_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (*MetadataRequest) Descriptor() ([]byte, []int) {
	return file_v1_serde_proto_rawDescGZIP(), []int{0}
}

type MetadataResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Name          string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Version       string                 `protobuf:"bytes,2,opt,name=version,proto3" json:"version,omitempty"`
	Serdes        []string               `protobuf:"bytes,3,rep,name=serdes,proto3" json:"serdes,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *MetadataResponse) Reset() {
	*x = MetadataResponse{}
	mi := &file_v1_serde_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *MetadataResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*MetadataResponse) ProtoMessage() {}

func (x *MetadataResponse) ProtoReflect() protoreflect.Message {
	mi := &file_v1_serde_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (*MetadataResponse) Descriptor() ([]byte, []int) {
	return file_v1_serde_proto_rawDescGZIP(), []int{1}
}

func (x *MetadataResponse) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *MetadataResponse) GetVersion() string {
	if x != nil {
		return x.Version
	}
	return ""
}

func (x *MetadataResponse) GetSerdes() []string {
	if x != nil {
		return x.Serdes
	}
	return nil
}

type HealthRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *HealthRequest) Reset() {
	*x = HealthRequest{}
	mi := &file_v1_serde_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *HealthRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*HealthRequest) ProtoMessage() {}

func (x *HealthRequest) ProtoReflect() protoreflect.Message {
	mi := &file_v1_serde_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (*HealthRequest) Descriptor() ([]byte, []int) {
	return file_v1_serde_proto_rawDescGZIP(), []int{2}
}

type HealthResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Ok            bool                   `protobuf:"varint,1,opt,name=ok,proto3" json:"ok,omitempty"`
	Details       string                 `protobuf:"bytes,2,opt,name=details,proto3" json:"details,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *HealthResponse) Reset() {
	*x = HealthResponse{}
	mi := &file_v1_serde_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *HealthResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*HealthResponse) ProtoMessage() {}

func (x *HealthResponse) ProtoReflect() protoreflect.Message {
	mi := &file_v1_serde_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (*HealthResponse) Descriptor() ([]byte, []int) {
	return file_v1_serde_proto_rawDescGZIP(), []int{3}
}

func (x *HealthResponse) GetOk() bool {
	if x != nil {
		return x.Ok
	}
	return false
}

func (x *HealthResponse) GetDetails() string {
	if x != nil {
		return x.Details
	}
	return ""
}

type DeserializeRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Serde         string                 `protobuf:"bytes,1,opt,name=serde,proto3" json:"serde,omitempty"`
	Data          []byte                 `protobuf:"bytes,2,opt,name=data,proto3" json:"data,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeserializeRequest) Reset() {
	*x = DeserializeRequest{}
	mi := &file_v1_serde_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeserializeRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeserializeRequest) ProtoMessage() {}

func (x *DeserializeRequest) ProtoReflect() protoreflect.Message {
	mi := &file_v1_serde_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (*DeserializeRequest) Descriptor() ([]byte, []int) {
	return file_v1_serde_proto_rawDescGZIP(), []int{4}
}

func (x *DeserializeRequest) GetSerde() string {
	if x != nil {
		return x.Serde
	}
	return ""
}

func (x *DeserializeRequest) GetData() []byte {
	if x != nil {
		return x.Data
	}
	return nil
}

type DeserializeResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Text          string                 `protobuf:"bytes,1,opt,name=text,proto3" json:"text,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeserializeResponse) Reset() {
	*x = DeserializeResponse{}
	mi := &file_v1_serde_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeserializeResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeserializeResponse) ProtoMessage() {}

func (x *DeserializeResponse) ProtoReflect() protoreflect.Message {
	mi := &file_v1_serde_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (*DeserializeResponse) Descriptor() ([]byte, []int) {
	return file_v1_serde_proto_rawDescGZIP(), []int{5}
}

func (x *DeserializeResponse) GetText() string {
	if x != nil {
		return x.Text
	}
	return ""
}

var File_v1_serde_proto protoreflect.FileDescriptor

const file_v1_serde_proto_rawDesc = "" +
	"\n" +
	"\x0ev1/serde.proto\x12\n" +
	"kafkaui.v1\"\x11\n" +
	"\x0fMetadataRequest\"X\n" +
	"\x10MetadataResponse\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\x12\x18\n" +
	"\aversion\x18\x02 \x01(\tR\aversion\x12\x16\n" +
	"\x06serdes\x18\x03 \x03(\tR\x06serdes\"\x0f\n" +
	"\rHealthRequest\":\n" +
	"\x0eHealthResponse\x12\x0e\n" +
	"\x02ok\x18\x01 \x01(\bR\x02ok\x12\x18\n" +
	"\adetails\x18\x02 \x01(\tR\adetails\">\n" +
	"\x12DeserializeRequest\x12\x14\n" +
	"\x05serde\x18\x01 \x01(\tR\x05serde\x12\x12\n" +
	"\x04data\x18\x02 \x01(\fR\x04data\")\n" +
	"\x13DeserializeResponse\x12\x12\n" +
	"\x04text\x18\x01 \x01(\tR\x04text2\xe5\x01\n" +
	"\vSerdePlugin\x12E\n" +
	"\bMetadata\x12\x1b.kafkaui.v1.MetadataRequest\x1a\x1c.kafkaui.v1.MetadataResponse\x12?\n" +
	"\x06Health\x12\x19.kafkaui.v1.HealthRequest\x1a\x1a.kafkaui.v1.HealthResponse\x12N\n" +
	"\vDeserialize\x12\x1e.kafkaui.v1.DeserializeRequest\x1a\x1f.kafkaui.v1.DeserializeResponseB/Z-github.com/cxm940188/kafka-ui/api/proto/v1;pbb\x06proto3"

var (
	file_v1_serde_proto_rawDescOnce sync.Once
	file_v1_serde_proto_rawDescData []byte
)

func file_v1_serde_proto_rawDescGZIP() []byte {
	file_v1_serde_proto_rawDescOnce.Do(func() {
		file_v1_serde_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_v1_serde_proto_rawDesc), len(file_v1_serde_proto_rawDesc)))
	})
	return file_v1_serde_proto_rawDescData
}

var file_v1_serde_proto_msgTypes = make([]protoimpl.MessageInfo, 6)
var file_v1_serde_proto_goTypes = []any{
	(*MetadataRequest)(nil),
	(*MetadataResponse)(nil),
	(*HealthRequest)(nil),
	(*HealthResponse)(nil),
	(*DeserializeRequest)(nil),
	(*DeserializeResponse)(nil),
}
var file_v1_serde_proto_depIdxs = []int32{
	0,
	2,
	4,
	1,
	3,
	5,
	3,
	0,
	0,
	0,
	0,
}

func init() { file_v1_serde_proto_init() }
func file_v1_serde_proto_init() {
	if File_v1_serde_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_v1_serde_proto_rawDesc), len(file_v1_serde_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   6,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_v1_serde_proto_goTypes,
		DependencyIndexes: file_v1_serde_proto_depIdxs,
		MessageInfos:      file_v1_serde_proto_msgTypes,
	}.Build()
	File_v1_serde_proto = out.File
	file_v1_serde_proto_goTypes = nil
	file_v1_serde_proto_depIdxs = nil
}
