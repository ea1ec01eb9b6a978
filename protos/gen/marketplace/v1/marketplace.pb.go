// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.10
// 	protoc        (unknown)
// source: marketplace/v1/marketplace.proto

package marketplacev1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type ShopInfoRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ShopId        string                 `protobuf:"bytes,1,opt,name=shop_id,json=shopId,proto3" json:"shop_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ShopInfoRequest) Reset() {
	*x = ShopInfoRequest{}
	mi := &file_marketplace_v1_marketplace_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ShopInfoRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ShopInfoRequest) ProtoMessage() {}

func (x *ShopInfoRequest) ProtoReflect() protoreflect.Message {
	mi := &file_marketplace_v1_marketplace_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ShopInfoRequest.ProtoReflect.Descriptor instead.
func (*ShopInfoRequest) Descriptor() ([]byte, []int) {
	return file_marketplace_v1_marketplace_proto_rawDescGZIP(), []int{0}
}

func (x *ShopInfoRequest) GetShopId() string {
	if x != nil {
		return x.ShopId
	}
	return ""
}

type DayHours struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Day           string                 `protobuf:"bytes,1,opt,name=day,proto3" json:"day,omitempty"`     // lowercase weekday name
	Open          string                 `protobuf:"bytes,2,opt,name=open,proto3" json:"open,omitempty"`   // "HH:MM"
	Close         string                 `protobuf:"bytes,3,opt,name=close,proto3" json:"close,omitempty"` // "HH:MM"
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DayHours) Reset() {
	*x = DayHours{}
	mi := &file_marketplace_v1_marketplace_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DayHours) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DayHours) ProtoMessage() {}

func (x *DayHours) ProtoReflect() protoreflect.Message {
	mi := &file_marketplace_v1_marketplace_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DayHours.ProtoReflect.Descriptor instead.
func (*DayHours) Descriptor() ([]byte, []int) {
	return file_marketplace_v1_marketplace_proto_rawDescGZIP(), []int{1}
}

func (x *DayHours) GetDay() string {
	if x != nil {
		return x.Day
	}
	return ""
}

func (x *DayHours) GetOpen() string {
	if x != nil {
		return x.Open
	}
	return ""
}

func (x *DayHours) GetClose() string {
	if x != nil {
		return x.Close
	}
	return ""
}

type ServiceInfo struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	Id              string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Name            string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	DurationMinutes int32                  `protobuf:"varint,3,opt,name=duration_minutes,json=durationMinutes,proto3" json:"duration_minutes,omitempty"`
	Price           float64                `protobuf:"fixed64,4,opt,name=price,proto3" json:"price,omitempty"`
	DiscountedPrice float64                `protobuf:"fixed64,5,opt,name=discounted_price,json=discountedPrice,proto3" json:"discounted_price,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *ServiceInfo) Reset() {
	*x = ServiceInfo{}
	mi := &file_marketplace_v1_marketplace_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ServiceInfo) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ServiceInfo) ProtoMessage() {}

func (x *ServiceInfo) ProtoReflect() protoreflect.Message {
	mi := &file_marketplace_v1_marketplace_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ServiceInfo.ProtoReflect.Descriptor instead.
func (*ServiceInfo) Descriptor() ([]byte, []int) {
	return file_marketplace_v1_marketplace_proto_rawDescGZIP(), []int{2}
}

func (x *ServiceInfo) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *ServiceInfo) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *ServiceInfo) GetDurationMinutes() int32 {
	if x != nil {
		return x.DurationMinutes
	}
	return 0
}

func (x *ServiceInfo) GetPrice() float64 {
	if x != nil {
		return x.Price
	}
	return 0
}

func (x *ServiceInfo) GetDiscountedPrice() float64 {
	if x != nil {
		return x.DiscountedPrice
	}
	return 0
}

type StaffInfo struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	IsActive      bool                   `protobuf:"varint,3,opt,name=is_active,json=isActive,proto3" json:"is_active,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *StaffInfo) Reset() {
	*x = StaffInfo{}
	mi := &file_marketplace_v1_marketplace_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *StaffInfo) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*StaffInfo) ProtoMessage() {}

func (x *StaffInfo) ProtoReflect() protoreflect.Message {
	mi := &file_marketplace_v1_marketplace_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use StaffInfo.ProtoReflect.Descriptor instead.
func (*StaffInfo) Descriptor() ([]byte, []int) {
	return file_marketplace_v1_marketplace_proto_rawDescGZIP(), []int{3}
}

func (x *StaffInfo) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *StaffInfo) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *StaffInfo) GetIsActive() bool {
	if x != nil {
		return x.IsActive
	}
	return false
}

type ShopInfoResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ShopId        string                 `protobuf:"bytes,1,opt,name=shop_id,json=shopId,proto3" json:"shop_id,omitempty"`
	OwnerId       string                 `protobuf:"bytes,2,opt,name=owner_id,json=ownerId,proto3" json:"owner_id,omitempty"`
	Name          string                 `protobuf:"bytes,3,opt,name=name,proto3" json:"name,omitempty"`
	Address       string                 `protobuf:"bytes,4,opt,name=address,proto3" json:"address,omitempty"`
	ImageMain     string                 `protobuf:"bytes,5,opt,name=image_main,json=imageMain,proto3" json:"image_main,omitempty"`
	IsActive      bool                   `protobuf:"varint,6,opt,name=is_active,json=isActive,proto3" json:"is_active,omitempty"`
	WorkingHours  []*DayHours            `protobuf:"bytes,7,rep,name=working_hours,json=workingHours,proto3" json:"working_hours,omitempty"`
	Services      []*ServiceInfo         `protobuf:"bytes,8,rep,name=services,proto3" json:"services,omitempty"`
	Staff         []*StaffInfo           `protobuf:"bytes,9,rep,name=staff,proto3" json:"staff,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ShopInfoResponse) Reset() {
	*x = ShopInfoResponse{}
	mi := &file_marketplace_v1_marketplace_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ShopInfoResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ShopInfoResponse) ProtoMessage() {}

func (x *ShopInfoResponse) ProtoReflect() protoreflect.Message {
	mi := &file_marketplace_v1_marketplace_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ShopInfoResponse.ProtoReflect.Descriptor instead.
func (*ShopInfoResponse) Descriptor() ([]byte, []int) {
	return file_marketplace_v1_marketplace_proto_rawDescGZIP(), []int{4}
}

func (x *ShopInfoResponse) GetShopId() string {
	if x != nil {
		return x.ShopId
	}
	return ""
}

func (x *ShopInfoResponse) GetOwnerId() string {
	if x != nil {
		return x.OwnerId
	}
	return ""
}

func (x *ShopInfoResponse) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *ShopInfoResponse) GetAddress() string {
	if x != nil {
		return x.Address
	}
	return ""
}

func (x *ShopInfoResponse) GetImageMain() string {
	if x != nil {
		return x.ImageMain
	}
	return ""
}

func (x *ShopInfoResponse) GetIsActive() bool {
	if x != nil {
		return x.IsActive
	}
	return false
}

func (x *ShopInfoResponse) GetWorkingHours() []*DayHours {
	if x != nil {
		return x.WorkingHours
	}
	return nil
}

func (x *ShopInfoResponse) GetServices() []*ServiceInfo {
	if x != nil {
		return x.Services
	}
	return nil
}

func (x *ShopInfoResponse) GetStaff() []*StaffInfo {
	if x != nil {
		return x.Staff
	}
	return nil
}

var File_marketplace_v1_marketplace_proto protoreflect.FileDescriptor

const file_marketplace_v1_marketplace_proto_rawDesc = "" +
	"\n" +
	" marketplace/v1/marketplace.proto\x12\x0emarketplace.v1\"*\n" +
	"\x0fShopInfoRequest\x12\x17\n" +
	"\ashop_id\x18\x01 \x01(\tR\x06shopId\"F\n" +
	"\bDayHours\x12\x10\n" +
	"\x03day\x18\x01 \x01(\tR\x03day\x12\x12\n" +
	"\x04open\x18\x02 \x01(\tR\x04open\x12\x14\n" +
	"\x05close\x18\x03 \x01(\tR\x05close\"\x9d\x01\n" +
	"\vServiceInfo\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12)\n" +
	"\x10duration_minutes\x18\x03 \x01(\x05R\x0fdurationMinutes\x12\x14\n" +
	"\x05price\x18\x04 \x01(\x01R\x05price\x12)\n" +
	"\x10discounted_price\x18\x05 \x01(\x01R\x0fdiscountedPrice\"L\n" +
	"\tStaffInfo\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12\x1b\n" +
	"\tis_active\x18\x03 \x01(\bR\bisActive\"\xd9\x02\n" +
	"\x10ShopInfoResponse\x12\x17\n" +
	"\ashop_id\x18\x01 \x01(\tR\x06shopId\x12\x19\n" +
	"\bowner_id\x18\x02 \x01(\tR\aownerId\x12\x12\n" +
	"\x04name\x18\x03 \x01(\tR\x04name\x12\x18\n" +
	"\aaddress\x18\x04 \x01(\tR\aaddress\x12\x1d\n" +
	"\n" +
	"image_main\x18\x05 \x01(\tR\timageMain\x12\x1b\n" +
	"\tis_active\x18\x06 \x01(\bR\bisActive\x12=\n" +
	"\rworking_hours\x18\a \x03(\v2\x18.marketplace.v1.DayHoursR\fworkingHours\x127\n" +
	"\bservices\x18\b \x03(\v2\x1b.marketplace.v1.ServiceInfoR\bservices\x12/\n" +
	"\x05staff\x18\t \x03(\v2\x19.marketplace.v1.StaffInfoR\x05staff2h\n" +
	"\x14ShopDirectoryService\x12P\n" +
	"\vGetShopInfo\x12\x1f.marketplace.v1.ShopInfoRequest\x1a .marketplace.v1.ShopInfoResponseBGZEgithub.com/randevuapp/randevu/protos/gen/marketplace/v1;marketplacev1b\x06proto3"

var (
	file_marketplace_v1_marketplace_proto_rawDescOnce sync.Once
	file_marketplace_v1_marketplace_proto_rawDescData []byte
)

func file_marketplace_v1_marketplace_proto_rawDescGZIP() []byte {
	file_marketplace_v1_marketplace_proto_rawDescOnce.Do(func() {
		file_marketplace_v1_marketplace_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_marketplace_v1_marketplace_proto_rawDesc), len(file_marketplace_v1_marketplace_proto_rawDesc)))
	})
	return file_marketplace_v1_marketplace_proto_rawDescData
}

var file_marketplace_v1_marketplace_proto_msgTypes = make([]protoimpl.MessageInfo, 5)
var file_marketplace_v1_marketplace_proto_goTypes = []any{
	(*ShopInfoRequest)(nil),  // 0: marketplace.v1.ShopInfoRequest
	(*DayHours)(nil),         // 1: marketplace.v1.DayHours
	(*ServiceInfo)(nil),      // 2: marketplace.v1.ServiceInfo
	(*StaffInfo)(nil),        // 3: marketplace.v1.StaffInfo
	(*ShopInfoResponse)(nil), // 4: marketplace.v1.ShopInfoResponse
}
var file_marketplace_v1_marketplace_proto_depIdxs = []int32{
	1, // 0: marketplace.v1.ShopInfoResponse.working_hours:type_name -> marketplace.v1.DayHours
	2, // 1: marketplace.v1.ShopInfoResponse.services:type_name -> marketplace.v1.ServiceInfo
	3, // 2: marketplace.v1.ShopInfoResponse.staff:type_name -> marketplace.v1.StaffInfo
	0, // 3: marketplace.v1.ShopDirectoryService.GetShopInfo:input_type -> marketplace.v1.ShopInfoRequest
	4, // 4: marketplace.v1.ShopDirectoryService.GetShopInfo:output_type -> marketplace.v1.ShopInfoResponse
	4, // [4:5] is the sub-list for method output_type
	3, // [3:4] is the sub-list for method input_type
	3, // [3:3] is the sub-list for extension type_name
	3, // [3:3] is the sub-list for extension extendee
	0, // [0:3] is the sub-list for field type_name
}

func init() { file_marketplace_v1_marketplace_proto_init() }
func file_marketplace_v1_marketplace_proto_init() {
	if File_marketplace_v1_marketplace_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_marketplace_v1_marketplace_proto_rawDesc), len(file_marketplace_v1_marketplace_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   5,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_marketplace_v1_marketplace_proto_goTypes,
		DependencyIndexes: file_marketplace_v1_marketplace_proto_depIdxs,
		MessageInfos:      file_marketplace_v1_marketplace_proto_msgTypes,
	}.Build()
	File_marketplace_v1_marketplace_proto = out.File
	file_marketplace_v1_marketplace_proto_goTypes = nil
	file_marketplace_v1_marketplace_proto_depIdxs = nil
}
