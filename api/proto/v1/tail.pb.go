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

type TailRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Topic         string                 `protobuf:"bytes,1,opt,name=topic,proto3" json:"topic,omitempty"`
	Direction     string                 `protobuf:"bytes,2,opt,name=direction,proto3" json:"direction,omitempty"`
	Mode          string                 `protobuf:"bytes,3,opt,name=mode,proto3" json:"mode,omitempty"`
	Partitions    []int32                `protobuf:"varint,4,rep,packed,name=partitions,proto3" json:"partitions,omitempty"`
	Offset        *int64                 `protobuf:"varint,5,opt,name=offset,proto3,oneof" json:"offset,omitempty"`
	Offsets       []*PartitionOffset     `protobuf:"bytes,6,rep,name=offsets,proto3" json:"offsets,omitempty"`
	TimestampMs   *int64                 `protobuf:"varint,7,opt,name=timestamp_ms,json=timestampMs,proto3,oneof" json:"timestamp_ms,omitempty"`
	Limit         int32                  `protobuf:"varint,8,opt,name=limit,proto3" json:"limit,omitempty"`
	Follow        bool                   `protobuf:"varint,9,opt,name=follow,proto3" json:"follow,omitempty"`
	Filter        string                 `protobuf:"bytes,10,opt,name=filter,proto3" json:"filter,omitempty"`
	Contains      string                 `protobuf:"bytes,11,opt,name=contains,proto3" json:"contains,omitempty"`
	KeySerde      string                 `protobuf:"bytes,12,opt,name=key_serde,json=keySerde,proto3" json:"key_serde,omitempty"`
	ValueSerde    string                 `protobuf:"bytes,13,opt,name=value_serde,json=valueSerde,proto3" json:"value_serde,omitempty"`
	Resume        string                 `protobuf:"bytes,14,opt,name=resume,proto3" json:"resume,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *TailRequest) Reset() {
	*x = TailRequest{}
	mi := &file_v1_tail_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TailRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TailRequest) ProtoMessage() {}

func (x *TailRequest) ProtoReflect() protoreflect.Message {
	mi := &file_v1_tail_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (*TailRequest) Descriptor() ([]byte, []int) {
	return file_v1_tail_proto_rawDescGZIP(), []int{0}
}

func (x *TailRequest) GetTopic() string {
	if x != nil {
		return x.Topic
	}
	return ""
}

func (x *TailRequest) GetDirection() string {
	if x != nil {
		return x.Direction
	}
	return ""
}

func (x *TailRequest) GetMode() string {
	if x != nil {
		return x.Mode
	}
	return ""
}

func (x *TailRequest) GetPartitions() []int32 {
	if x != nil {
		return x.Partitions
	}
	return nil
}

func (x *TailRequest) GetOffset() int64 {
	if x != nil && x.Offset != nil {
		return *x.Offset
	}
	return 0
}

func (x *TailRequest) GetOffsets() []*PartitionOffset {
	if x != nil {
		return x.Offsets
	}
	return nil
}

func (x *TailRequest) GetTimestampMs() int64 {
	if x != nil && x.TimestampMs != nil {
		return *x.TimestampMs
	}
	return 0
}

func (x *TailRequest) GetLimit() int32 {
	if x != nil {
		return x.Limit
	}
	return 0
}

func (x *TailRequest) GetFollow() bool {
	if x != nil {
		return x.Follow
	}
	return false
}

func (x *TailRequest) GetFilter() string {
	if x != nil {
		return x.Filter
	}
	return ""
}

func (x *TailRequest) GetContains() string {
	if x != nil {
		return x.Contains
	}
	return ""
}

func (x *TailRequest) GetKeySerde() string {
	if x != nil {
		return x.KeySerde
	}
	return ""
}

func (x *TailRequest) GetValueSerde() string {
	if x != nil {
		return x.ValueSerde
	}
	return ""
}

func (x *TailRequest) GetResume() string {
	if x != nil {
		return x.Resume
	}
	return ""
}

type PartitionOffset struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Partition     int32                  `protobuf:"varint,1,opt,name=partition,proto3" json:"partition,omitempty"`
	Offset        int64                  `protobuf:"varint,2,opt,name=offset,proto3" json:"offset,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *PartitionOffset) Reset() {
	*x = PartitionOffset{}
	mi := &file_v1_tail_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PartitionOffset) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PartitionOffset) ProtoMessage() {}

func (x *PartitionOffset) ProtoReflect() protoreflect.Message {
	mi := &file_v1_tail_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (*PartitionOffset) Descriptor() ([]byte, []int) {
	return file_v1_tail_proto_rawDescGZIP(), []int{1}
}

func (x *PartitionOffset) GetPartition() int32 {
	if x != nil {
		return x.Partition
	}
	return 0
}

func (x *PartitionOffset) GetOffset() int64 {
	if x != nil {
		return x.Offset
	}
	return 0
}

type TailEvent struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Type          string                 `protobuf:"bytes,1,opt,name=type,proto3" json:"type,omitempty"`
	Phase         string                 `protobuf:"bytes,2,opt,name=phase,proto3" json:"phase,omitempty"`
	Message       *TailMessage           `protobuf:"bytes,3,opt,name=message,proto3" json:"message,omitempty"`
	Done          *TailSummary           `protobuf:"bytes,4,opt,name=done,proto3" json:"done,omitempty"`
	Error         string                 `protobuf:"bytes,5,opt,name=error,proto3" json:"error,omitempty"`
	ErrorKind     string                 `protobuf:"bytes,6,opt,name=error_kind,json=errorKind,proto3" json:"error_kind,omitempty"`
	CursorId      string                 `protobuf:"bytes,7,opt,name=cursor_id,json=cursorId,proto3" json:"cursor_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *TailEvent) Reset() {
	*x = TailEvent{}
	mi := &file_v1_tail_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TailEvent) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TailEvent) ProtoMessage() {}

func (x *TailEvent) ProtoReflect() protoreflect.Message {
	mi := &file_v1_tail_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (*TailEvent) Descriptor() ([]byte, []int) {
	return file_v1_tail_proto_rawDescGZIP(), []int{2}
}

func (x *TailEvent) GetType() string {
	if x != nil {
		return x.Type
	}
	return ""
}

func (x *TailEvent) GetPhase() string {
	if x != nil {
		return x.Phase
	}
	return ""
}

func (x *TailEvent) GetMessage() *TailMessage {
	if x != nil {
		return x.Message
	}
	return nil
}

func (x *TailEvent) GetDone() *TailSummary {
	if x != nil {
		return x.Done
	}
	return nil
}

func (x *TailEvent) GetError() string {
	if x != nil {
		return x.Error
	}
	return ""
}

func (x *TailEvent) GetErrorKind() string {
	if x != nil {
		return x.ErrorKind
	}
	return ""
}

func (x *TailEvent) GetCursorId() string {
	if x != nil {
		return x.CursorId
	}
	return ""
}

type TailMessage struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Topic         string                 `protobuf:"bytes,1,opt,name=topic,proto3" json:"topic,omitempty"`
	Partition     int32                  `protobuf:"varint,2,opt,name=partition,proto3" json:"partition,omitempty"`
	Offset        int64                  `protobuf:"varint,3,opt,name=offset,proto3" json:"offset,omitempty"`
	TimestampMs   int64                  `protobuf:"varint,4,opt,name=timestamp_ms,json=timestampMs,proto3" json:"timestamp_ms,omitempty"`
	Key           *string                `protobuf:"bytes,5,opt,name=key,proto3,oneof" json:"key,omitempty"`
	Value         *string                `protobuf:"bytes,6,opt,name=value,proto3,oneof" json:"value,omitempty"`
	Headers       []*Header              `protobuf:"bytes,7,rep,name=headers,proto3" json:"headers,omitempty"`
	KeySize       int32                  `protobuf:"varint,8,opt,name=key_size,json=keySize,proto3" json:"key_size,omitempty"`
	ValueSize     int32                  `protobuf:"varint,9,opt,name=value_size,json=valueSize,proto3" json:"value_size,omitempty"`
	KeyFormat     string                 `protobuf:"bytes,10,opt,name=key_format,json=keyFormat,proto3" json:"key_format,omitempty"`
	ValueFormat   string                 `protobuf:"bytes,11,opt,name=value_format,json=valueFormat,proto3" json:"value_format,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *TailMessage) Reset() {
	*x = TailMessage{}
	mi := &file_v1_tail_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TailMessage) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TailMessage) ProtoMessage() {}

func (x *TailMessage) ProtoReflect() protoreflect.Message {
	mi := &file_v1_tail_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (*TailMessage) Descriptor() ([]byte, []int) {
	return file_v1_tail_proto_rawDescGZIP(), []int{3}
}

func (x *TailMessage) GetTopic() string {
	if x != nil {
		return x.Topic
	}
	return ""
}

func (x *TailMessage) GetPartition() int32 {
	if x != nil {
		return x.Partition
	}
	return 0
}

func (x *TailMessage) GetOffset() int64 {
	if x != nil {
		return x.Offset
	}
	return 0
}

func (x *TailMessage) GetTimestampMs() int64 {
	if x != nil {
		return x.TimestampMs
	}
	return 0
}

func (x *TailMessage) GetKey() string {
	if x != nil && x.Key != nil {
		return *x.Key
	}
	return ""
}

func (x *TailMessage) GetValue() string {
	if x != nil && x.Value != nil {
		return *x.Value
	}
	return ""
}

func (x *TailMessage) GetHeaders() []*Header {
	if x != nil {
		return x.Headers
	}
	return nil
}

func (x *TailMessage) GetKeySize() int32 {
	if x != nil {
		return x.KeySize
	}
	return 0
}

func (x *TailMessage) GetValueSize() int32 {
	if x != nil {
		return x.ValueSize
	}
	return 0
}

func (x *TailMessage) GetKeyFormat() string {
	if x != nil {
		return x.KeyFormat
	}
	return ""
}

func (x *TailMessage) GetValueFormat() string {
	if x != nil {
		return x.ValueFormat
	}
	return ""
}

type Header struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Key           string                 `protobuf:"bytes,1,opt,name=key,proto3" json:"key,omitempty"`
	Value         string                 `protobuf:"bytes,2,opt,name=value,proto3" json:"value,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Header) Reset() {
	*x = Header{}
	mi := &file_v1_tail_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Header) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Header) ProtoMessage() {}

func (x *Header) ProtoReflect() protoreflect.Message {
	mi := &file_v1_tail_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (*Header) Descriptor() ([]byte, []int) {
	return file_v1_tail_proto_rawDescGZIP(), []int{4}
}

func (x *Header) GetKey() string {
	if x != nil {
		return x.Key
	}
	return ""
}

func (x *Header) GetValue() string {
	if x != nil {
		return x.Value
	}
	return ""
}

type TailSummary struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ElapsedMs     int64                  `protobuf:"varint,1,opt,name=elapsed_ms,json=elapsedMs,proto3" json:"elapsed_ms,omitempty"`
	Polls         int64                  `protobuf:"varint,2,opt,name=polls,proto3" json:"polls,omitempty"`
	Messages      int64                  `protobuf:"varint,3,opt,name=messages,proto3" json:"messages,omitempty"`
	BytesPolled   int64                  `protobuf:"varint,4,opt,name=bytes_polled,json=bytesPolled,proto3" json:"bytes_polled,omitempty"`
	Filtered      int64                  `protobuf:"varint,5,opt,name=filtered,proto3" json:"filtered,omitempty"`
	FilterErrors  int64                  `protobuf:"varint,6,opt,name=filter_errors,json=filterErrors,proto3" json:"filter_errors,omitempty"`
	Skipped       int64                  `protobuf:"varint,7,opt,name=skipped,proto3" json:"skipped,omitempty"`
	Reason        string                 `protobuf:"bytes,8,opt,name=reason,proto3" json:"reason,omitempty"`
	Cursor        *TailCursor            `protobuf:"bytes,9,opt,name=cursor,proto3" json:"cursor,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *TailSummary) Reset() {
	*x = TailSummary{}
	mi := &file_v1_tail_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TailSummary) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TailSummary) ProtoMessage() {}

func (x *TailSummary) ProtoReflect() protoreflect.Message {
	mi := &file_v1_tail_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (*TailSummary) Descriptor() ([]byte, []int) {
	return file_v1_tail_proto_rawDescGZIP(), []int{5}
}

func (x *TailSummary) GetElapsedMs() int64 {
	if x != nil {
		return x.ElapsedMs
	}
	return 0
}

func (x *TailSummary) GetPolls() int64 {
	if x != nil {
		return x.Polls
	}
	return 0
}

func (x *TailSummary) GetMessages() int64 {
	if x != nil {
		return x.Messages
	}
	return 0
}

func (x *TailSummary) GetBytesPolled() int64 {
	if x != nil {
		return x.BytesPolled
	}
	return 0
}

func (x *TailSummary) GetFiltered() int64 {
	if x != nil {
		return x.Filtered
	}
	return 0
}

func (x *TailSummary) GetFilterErrors() int64 {
	if x != nil {
		return x.FilterErrors
	}
	return 0
}

func (x *TailSummary) GetSkipped() int64 {
	if x != nil {
		return x.Skipped
	}
	return 0
}

func (x *TailSummary) GetReason() string {
	if x != nil {
		return x.Reason
	}
	return ""
}

func (x *TailSummary) GetCursor() *TailCursor {
	if x != nil {
		return x.Cursor
	}
	return nil
}

type TailCursor struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Topic         string                 `protobuf:"bytes,1,opt,name=topic,proto3" json:"topic,omitempty"`
	Direction     string                 `protobuf:"bytes,2,opt,name=direction,proto3" json:"direction,omitempty"`
	Next          []*PartitionOffset     `protobuf:"bytes,3,rep,name=next,proto3" json:"next,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *TailCursor) Reset() {
	*x = TailCursor{}
	mi := &file_v1_tail_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TailCursor) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TailCursor) ProtoMessage() {}

func (x *TailCursor) ProtoReflect() protoreflect.Message {
	mi := &file_v1_tail_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (*TailCursor) Descriptor() ([]byte, []int) {
	return file_v1_tail_proto_rawDescGZIP(), []int{6}
}

func (x *TailCursor) GetTopic() string {
	if x != nil {
		return x.Topic
	}
	return ""
}

func (x *TailCursor) GetDirection() string {
	if x != nil {
		return x.Direction
	}
	return ""
}

func (x *TailCursor) GetNext() []*PartitionOffset {
	if x != nil {
		return x.Next
	}
	return nil
}

var File_v1_tail_proto protoreflect.FileDescriptor

const file_v1_tail_proto_rawDesc = "" +
	"\n" +
	"\rv1/tail.proto\x12\n" +
	"kafkaui.v1\"\xc5\x03\n" +
	"\vTailRequest\x12\x14\n" +
	"\x05topic\x18\x01 \x01(\tR\x05topic\x12\x1c\n" +
	"\tdirection\x18\x02 \x01(\tR\tdirection\x12\x12\n" +
	"\x04mode\x18\x03 \x01(\tR\x04mode\x12\x1e\n" +
	"\n" +
	"partitions\x18\x04 \x03(\x05R\n" +
	"partitions\x12\x1b\n" +
	"\x06offset\x18\x05 \x01(\x03H\x00R\x06offset\x88\x01\x01\x125\n" +
	"\aoffsets\x18\x06 \x03(\v2\x1b.kafkaui.v1.PartitionOffsetR\aoffsets\x12&\n" +
	"\ftimestamp_ms\x18\a \x01(\x03H\x01R\vtimestampMs\x88\x01\x01\x12\x14\n" +
	"\x05limit\x18\b \x01(\x05R\x05limit\x12\x16\n" +
	"\x06follow\x18\t \x01(\bR\x06follow\x12\x16\n" +
	"\x06filter\x18\n" +
	" \x01(\tR\x06filter\x12\x1a\n" +
	"\bcontains\x18\v \x01(\tR\bcontains\x12\x1b\n" +
	"\tkey_serde\x18\f \x01(\tR\bkeySerde\x12\x1f\n" +
	"\vvalue_serde\x18\r \x01(\tR\n" +
	"valueSerde\x12\x16\n" +
	"\x06resume\x18\x0e \x01(\tR\x06resumeB\t\n" +
	"\a_offsetB\x0f\n" +
	"\r_timestamp_ms\"G\n" +
	"\x0fPartitionOffset\x12\x1c\n" +
	"\tpartition\x18\x01 \x01(\x05R\tpartition\x12\x16\n" +
	"\x06offset\x18\x02 \x01(\x03R\x06offset\"\xe7\x01\n" +
	"\tTailEvent\x12\x12\n" +
	"\x04type\x18\x01 \x01(\tR\x04type\x12\x14\n" +
	"\x05phase\x18\x02 \x01(\tR\x05phase\x121\n" +
	"\amessage\x18\x03 \x01(\v2\x17.kafkaui.v1.TailMessageR\amessage\x12+\n" +
	"\x04done\x18\x04 \x01(\v2\x17.kafkaui.v1.TailSummaryR\x04done\x12\x14\n" +
	"\x05error\x18\x05 \x01(\tR\x05error\x12\x1d\n" +
	"\n" +
	"error_kind\x18\x06 \x01(\tR\terrorKind\x12\x1b\n" +
	"\tcursor_id\x18\a \x01(\tR\bcursorId\"\xea\x02\n" +
	"\vTailMessage\x12\x14\n" +
	"\x05topic\x18\x01 \x01(\tR\x05topic\x12\x1c\n" +
	"\tpartition\x18\x02 \x01(\x05R\tpartition\x12\x16\n" +
	"\x06offset\x18\x03 \x01(\x03R\x06offset\x12!\n" +
	"\ftimestamp_ms\x18\x04 \x01(\x03R\vtimestampMs\x12\x15\n" +
	"\x03key\x18\x05 \x01(\tH\x00R\x03key\x88\x01\x01\x12\x19\n" +
	"\x05value\x18\x06 \x01(\tH\x01R\x05value\x88\x01\x01\x12,\n" +
	"\aheaders\x18\a \x03(\v2\x12.kafkaui.v1.HeaderR\aheaders\x12\x19\n" +
	"\bkey_size\x18\b \x01(\x05R\akeySize\x12\x1d\n" +
	"\n" +
	"value_size\x18\t \x01(\x05R\tvalueSize\x12\x1d\n" +
	"\n" +
	"key_format\x18\n" +
	" \x01(\tR\tkeyFormat\x12!\n" +
	"\fvalue_format\x18\v \x01(\tR\vvalueFormatB\x06\n" +
	"\x04_keyB\b\n" +
	"\x06_value\"0\n" +
	"\x06Header\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\tR\x05value\"\xa4\x02\n" +
	"\vTailSummary\x12\x1d\n" +
	"\n" +
	"elapsed_ms\x18\x01 \x01(\x03R\telapsedMs\x12\x14\n" +
	"\x05polls\x18\x02 \x01(\x03R\x05polls\x12\x1a\n" +
	"\bmessages\x18\x03 \x01(\x03R\bmessages\x12!\n" +
	"\fbytes_polled\x18\x04 \x01(\x03R\vbytesPolled\x12\x1a\n" +
	"\bfiltered\x18\x05 \x01(\x03R\bfiltered\x12#\n" +
	"\rfilter_errors\x18\x06 \x01(\x03R\ffilterErrors\x12\x18\n" +
	"\askipped\x18\a \x01(\x03R\askipped\x12\x16\n" +
	"\x06reason\x18\b \x01(\tR\x06reason\x12.\n" +
	"\x06cursor\x18\t \x01(\v2\x16.kafkaui.v1.TailCursorR\x06cursor\"q\n" +
	"\n" +
	"TailCursor\x12\x14\n" +
	"\x05topic\x18\x01 \x01(\tR\x05topic\x12\x1c\n" +
	"\tdirection\x18\x02 \x01(\tR\tdirection\x12/\n" +
	"\x04next\x18\x03 \x03(\v2\x1b.kafkaui.v1.PartitionOffsetR\x04next2@\n" +
	"\x04Tail\x128\n" +
	"\x04Tail\x12\x17.kafkaui.v1.TailRequest\x1a\x15.kafkaui.v1.TailEvent0\x01B/Z-github.com/cxm940188/kafka-ui/api/proto/v1;pbb\x06proto3"

var (
	file_v1_tail_proto_rawDescOnce sync.Once
	file_v1_tail_proto_rawDescData []byte
)

func file_v1_tail_proto_rawDescGZIP() []byte {
	file_v1_tail_proto_rawDescOnce.Do(func() {
		file_v1_tail_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_v1_tail_proto_rawDesc), len(file_v1_tail_proto_rawDesc)))
	})
	return file_v1_tail_proto_rawDescData
}

var file_v1_tail_proto_msgTypes = make([]protoimpl.MessageInfo, 7)
var file_v1_tail_proto_goTypes = []any{
	(*TailRequest)(nil),
	(*PartitionOffset)(nil),
	(*TailEvent)(nil),
	(*TailMessage)(nil),
	(*Header)(nil),
	(*TailSummary)(nil),
	(*TailCursor)(nil),
}
var file_v1_tail_proto_depIdxs = []int32{
	1,
	3,
	5,
	4,
	6,
	1,
	0,
	2,
	7,
	6,
	6,
	6,
	0,
}

func init() { file_v1_tail_proto_init() }
func file_v1_tail_proto_init() {
	if File_v1_tail_proto != nil {
		return
	}
	file_v1_tail_proto_msgTypes[0].OneofWrappers = []any{}
	file_v1_tail_proto_msgTypes[3].OneofWrappers = []any{}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_v1_tail_proto_rawDesc), len(file_v1_tail_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   7,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_v1_tail_proto_goTypes,
		DependencyIndexes: file_v1_tail_proto_depIdxs,
		MessageInfos:      file_v1_tail_proto_msgTypes,
	}.Build()
	File_v1_tail_proto = out.File
	file_v1_tail_proto_goTypes = nil
	file_v1_tail_proto_depIdxs = nil
}
