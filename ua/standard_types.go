// Copyright 2021 Converter Systems LLC. All rights reserved.

package ua

import (
	"fmt"
	"reflect"
	"time"

	"github.com/beevik/etree"
	"github.com/google/uuid"
)

// ServiceRequest is implemented by the requests of the services.
type ServiceRequest interface {
	Encodable
	Header() *RequestHeader
}

// ServiceResponse is implemented by the responses of the services.
type ServiceResponse interface {
	Encodable
	Header() *ResponseHeader
}

// TimestampsToReturn selects the timestamps the server returns with each value.
type TimestampsToReturn int32

// TimestampsToReturn
const (
	TimestampsToReturnSource TimestampsToReturn = iota
	TimestampsToReturnServer
	TimestampsToReturnBoth
	TimestampsToReturnNeither
	TimestampsToReturnInvalid
)

func (t TimestampsToReturn) String() string {
	switch t {
	case TimestampsToReturnSource:
		return "Source"
	case TimestampsToReturnServer:
		return "Server"
	case TimestampsToReturnBoth:
		return "Both"
	case TimestampsToReturnNeither:
		return "Neither"
	case TimestampsToReturnInvalid:
		return "Invalid"
	default:
		return fmt.Sprintf("TimestampsToReturn(%d)", int32(t))
	}
}

// StandardTypes returns the records of the standard structures.
func StandardTypes() []TypeRecord {
	return []TypeRecord{
		StructureRecord[RequestHeader](DataTypeIDRequestHeader, ObjectIDRequestHeaderEncodingDefaultBinary, ObjectIDRequestHeaderEncodingDefaultXML),
		StructureRecord[ResponseHeader](DataTypeIDResponseHeader, ObjectIDResponseHeaderEncodingDefaultBinary, ObjectIDResponseHeaderEncodingDefaultXML),
		StructureRecord[AnonymousIdentityToken](DataTypeIDAnonymousIdentityToken, ObjectIDAnonymousIdentityTokenEncodingDefaultBinary, ObjectIDAnonymousIdentityTokenEncodingDefaultXML),
		StructureRecord[UserNameIdentityToken](DataTypeIDUserNameIdentityToken, ObjectIDUserNameIdentityTokenEncodingDefaultBinary, ObjectIDUserNameIdentityTokenEncodingDefaultXML),
		StructureRecord[X509IdentityToken](DataTypeIDX509IdentityToken, ObjectIDX509IdentityTokenEncodingDefaultBinary, ObjectIDX509IdentityTokenEncodingDefaultXML),
		StructureRecord[ReadValueID](DataTypeIDReadValueID, ObjectIDReadValueIDEncodingDefaultBinary, ObjectIDReadValueIDEncodingDefaultXML),
		StructureRecord[ReadRequest](DataTypeIDReadRequest, ObjectIDReadRequestEncodingDefaultBinary, ObjectIDReadRequestEncodingDefaultXML),
		StructureRecord[ReadResponse](DataTypeIDReadResponse, ObjectIDReadResponseEncodingDefaultBinary, ObjectIDReadResponseEncodingDefaultXML),
		StructureRecord[CreateSubscriptionRequest](DataTypeIDCreateSubscriptionRequest, ObjectIDCreateSubscriptionRequestEncodingDefaultBinary, ObjectIDCreateSubscriptionRequestEncodingDefaultXML),
		StructureRecord[CreateSubscriptionResponse](DataTypeIDCreateSubscriptionResponse, ObjectIDCreateSubscriptionResponseEncodingDefaultBinary, ObjectIDCreateSubscriptionResponseEncodingDefaultXML),
		StructureRecord[ModifySubscriptionRequest](DataTypeIDModifySubscriptionRequest, ObjectIDModifySubscriptionRequestEncodingDefaultBinary, ObjectIDModifySubscriptionRequestEncodingDefaultXML),
		StructureRecord[ModifySubscriptionResponse](DataTypeIDModifySubscriptionResponse, ObjectIDModifySubscriptionResponseEncodingDefaultBinary, ObjectIDModifySubscriptionResponseEncodingDefaultXML),
		StructureRecord[SetPublishingModeRequest](DataTypeIDSetPublishingModeRequest, ObjectIDSetPublishingModeRequestEncodingDefaultBinary, ObjectIDSetPublishingModeRequestEncodingDefaultXML),
		StructureRecord[SetPublishingModeResponse](DataTypeIDSetPublishingModeResponse, ObjectIDSetPublishingModeResponseEncodingDefaultBinary, ObjectIDSetPublishingModeResponseEncodingDefaultXML),
		StructureRecord[NotificationMessage](DataTypeIDNotificationMessage, ObjectIDNotificationMessageEncodingDefaultBinary, ObjectIDNotificationMessageEncodingDefaultXML),
		StructureRecord[MonitoredItemNotification](DataTypeIDMonitoredItemNotification, ObjectIDMonitoredItemNotificationEncodingDefaultBinary, ObjectIDMonitoredItemNotificationEncodingDefaultXML),
		StructureRecord[DataChangeNotification](DataTypeIDDataChangeNotification, ObjectIDDataChangeNotificationEncodingDefaultBinary, ObjectIDDataChangeNotificationEncodingDefaultXML),
		StructureRecord[StatusChangeNotification](DataTypeIDStatusChangeNotification, ObjectIDStatusChangeNotificationEncodingDefaultBinary, ObjectIDStatusChangeNotificationEncodingDefaultXML),
		StructureRecord[SubscriptionAcknowledgement](DataTypeIDSubscriptionAcknowledgement, ObjectIDSubscriptionAcknowledgementEncodingDefaultBinary, ObjectIDSubscriptionAcknowledgementEncodingDefaultXML),
		StructureRecord[PublishRequest](DataTypeIDPublishRequest, ObjectIDPublishRequestEncodingDefaultBinary, ObjectIDPublishRequestEncodingDefaultXML),
		StructureRecord[PublishResponse](DataTypeIDPublishResponse, ObjectIDPublishResponseEncodingDefaultBinary, ObjectIDPublishResponseEncodingDefaultXML),
		StructureRecord[RepublishRequest](DataTypeIDRepublishRequest, ObjectIDRepublishRequestEncodingDefaultBinary, ObjectIDRepublishRequestEncodingDefaultXML),
		StructureRecord[RepublishResponse](DataTypeIDRepublishResponse, ObjectIDRepublishResponseEncodingDefaultBinary, ObjectIDRepublishResponseEncodingDefaultXML),
		StructureRecord[TransferResult](DataTypeIDTransferResult, ObjectIDTransferResultEncodingDefaultBinary, ObjectIDTransferResultEncodingDefaultXML),
		StructureRecord[TransferSubscriptionsRequest](DataTypeIDTransferSubscriptionsRequest, ObjectIDTransferSubscriptionsRequestEncodingDefaultBinary, ObjectIDTransferSubscriptionsRequestEncodingDefaultXML),
		StructureRecord[TransferSubscriptionsResponse](DataTypeIDTransferSubscriptionsResponse, ObjectIDTransferSubscriptionsResponseEncodingDefaultBinary, ObjectIDTransferSubscriptionsResponseEncodingDefaultXML),
		StructureRecord[DeleteSubscriptionsRequest](DataTypeIDDeleteSubscriptionsRequest, ObjectIDDeleteSubscriptionsRequestEncodingDefaultBinary, ObjectIDDeleteSubscriptionsRequestEncodingDefaultXML),
		StructureRecord[DeleteSubscriptionsResponse](DataTypeIDDeleteSubscriptionsResponse, ObjectIDDeleteSubscriptionsResponseEncodingDefaultBinary, ObjectIDDeleteSubscriptionsResponseEncodingDefaultXML),
	}
}

// builtInDataTypes maps the built-in data types to the Go types that carry their values.
var builtInDataTypes = []struct {
	id  NodeID
	typ reflect.Type
}{
	{DataTypeIDBoolean, reflect.TypeOf(false)},
	{DataTypeIDSByte, reflect.TypeOf(int8(0))},
	{DataTypeIDByte, reflect.TypeOf(uint8(0))},
	{DataTypeIDInt16, reflect.TypeOf(int16(0))},
	{DataTypeIDUInt16, reflect.TypeOf(uint16(0))},
	{DataTypeIDInt32, reflect.TypeOf(int32(0))},
	{DataTypeIDUInt32, reflect.TypeOf(uint32(0))},
	{DataTypeIDInt64, reflect.TypeOf(int64(0))},
	{DataTypeIDUInt64, reflect.TypeOf(uint64(0))},
	{DataTypeIDFloat, reflect.TypeOf(float32(0))},
	{DataTypeIDDouble, reflect.TypeOf(float64(0))},
	{DataTypeIDString, reflect.TypeOf("")},
	{DataTypeIDDateTime, reflect.TypeOf(time.Time{})},
	{DataTypeIDGUID, reflect.TypeOf(uuid.UUID{})},
	{DataTypeIDByteString, reflect.TypeOf([]byte(nil))},
	{DataTypeIDXMLElement, reflect.TypeOf((*etree.Element)(nil))},
	{DataTypeIDNodeID, reflect.TypeOf(NodeID{})},
	{DataTypeIDExpandedNodeID, reflect.TypeOf(ExpandedNodeID{})},
	{DataTypeIDStatusCode, reflect.TypeOf(StatusCode(0))},
	{DataTypeIDQualifiedName, reflect.TypeOf(QualifiedName{})},
	{DataTypeIDLocalizedText, reflect.TypeOf(LocalizedText{})},
	{DataTypeIDStructure, reflect.TypeOf((*ExtensionObject)(nil))},
	{DataTypeIDDataValue, reflect.TypeOf((*DataValue)(nil))},
	{DataTypeIDBaseDataType, reflect.TypeOf((*any)(nil)).Elem()},
	{DataTypeIDDiagnosticInfo, reflect.TypeOf((*DiagnosticInfo)(nil))},
	{DataTypeIDTimestampsToReturn, reflect.TypeOf(TimestampsToReturn(0))},
}

// writeStructArray writes a slice of structures.
func writeStructArray[T any, PT interface {
	*T
	Encodable
}](enc Encoder, values []T) error {
	return WriteArray(enc, values, func(enc Encoder, v T) error {
		return PT(&v).Encode(enc)
	})
}

// readStructArray reads a slice of structures.
func readStructArray[T any, PT interface {
	*T
	Encodable
}](dec Decoder) ([]T, error) {
	return ReadArray(dec, func(dec Decoder, v *T) error {
		return PT(v).Decode(dec)
	})
}
