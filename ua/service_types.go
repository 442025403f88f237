// Copyright 2021 Converter Systems LLC. All rights reserved.

package ua

import (
	"time"
)

// RequestHeader is carried by every service request.
type RequestHeader struct {
	AuthenticationToken NodeID
	Timestamp           time.Time
	RequestHandle       uint32
	ReturnDiagnostics   uint32
	AuditEntryID        string
	TimeoutHint         uint32
	AdditionalHeader    *ExtensionObject
}

// Encode writes the RequestHeader to the encoder.
func (r *RequestHeader) Encode(enc Encoder) error {
	if err := enc.WriteNodeID(r.AuthenticationToken); err != nil {
		return err
	}
	if err := enc.WriteDateTime(r.Timestamp); err != nil {
		return err
	}
	if err := enc.WriteUInt32(r.RequestHandle); err != nil {
		return err
	}
	if err := enc.WriteUInt32(r.ReturnDiagnostics); err != nil {
		return err
	}
	if err := enc.WriteString(r.AuditEntryID); err != nil {
		return err
	}
	if err := enc.WriteUInt32(r.TimeoutHint); err != nil {
		return err
	}
	if err := enc.WriteExtensionObject(r.AdditionalHeader); err != nil {
		return err
	}
	return nil
}

// Decode reads the RequestHeader from the decoder.
func (r *RequestHeader) Decode(dec Decoder) error {
	if err := dec.ReadNodeID(&r.AuthenticationToken); err != nil {
		return err
	}
	if err := dec.ReadDateTime(&r.Timestamp); err != nil {
		return err
	}
	if err := dec.ReadUInt32(&r.RequestHandle); err != nil {
		return err
	}
	if err := dec.ReadUInt32(&r.ReturnDiagnostics); err != nil {
		return err
	}
	if err := dec.ReadString(&r.AuditEntryID); err != nil {
		return err
	}
	if err := dec.ReadUInt32(&r.TimeoutHint); err != nil {
		return err
	}
	if err := dec.ReadExtensionObject(&r.AdditionalHeader); err != nil {
		return err
	}
	return nil
}

// ResponseHeader is carried by every service response. ServiceResult reports
// the outcome of the service as a whole.
type ResponseHeader struct {
	Timestamp          time.Time
	RequestHandle      uint32
	ServiceResult      StatusCode
	ServiceDiagnostics *DiagnosticInfo
	StringTable        []string
	AdditionalHeader   *ExtensionObject
}

// Encode writes the ResponseHeader to the encoder.
func (r *ResponseHeader) Encode(enc Encoder) error {
	if err := enc.WriteDateTime(r.Timestamp); err != nil {
		return err
	}
	if err := enc.WriteUInt32(r.RequestHandle); err != nil {
		return err
	}
	if err := enc.WriteStatusCode(r.ServiceResult); err != nil {
		return err
	}
	if err := enc.WriteDiagnosticInfo(r.ServiceDiagnostics); err != nil {
		return err
	}
	if err := enc.WriteStringArray(r.StringTable); err != nil {
		return err
	}
	if err := enc.WriteExtensionObject(r.AdditionalHeader); err != nil {
		return err
	}
	return nil
}

// Decode reads the ResponseHeader from the decoder.
func (r *ResponseHeader) Decode(dec Decoder) error {
	if err := dec.ReadDateTime(&r.Timestamp); err != nil {
		return err
	}
	if err := dec.ReadUInt32(&r.RequestHandle); err != nil {
		return err
	}
	if err := dec.ReadStatusCode(&r.ServiceResult); err != nil {
		return err
	}
	if err := dec.ReadDiagnosticInfo(&r.ServiceDiagnostics); err != nil {
		return err
	}
	if err := dec.ReadStringArray(&r.StringTable); err != nil {
		return err
	}
	if err := dec.ReadExtensionObject(&r.AdditionalHeader); err != nil {
		return err
	}
	return nil
}

// ReadValueID names an attribute of a node to read.
type ReadValueID struct {
	NodeID       NodeID
	AttributeID  uint32
	IndexRange   string
	DataEncoding QualifiedName
}

// Encode writes the ReadValueID to the encoder.
func (r *ReadValueID) Encode(enc Encoder) error {
	if err := enc.WriteNodeID(r.NodeID); err != nil {
		return err
	}
	if err := enc.WriteUInt32(r.AttributeID); err != nil {
		return err
	}
	if err := enc.WriteString(r.IndexRange); err != nil {
		return err
	}
	if err := enc.WriteQualifiedName(r.DataEncoding); err != nil {
		return err
	}
	return nil
}

// Decode reads the ReadValueID from the decoder.
func (r *ReadValueID) Decode(dec Decoder) error {
	if err := dec.ReadNodeID(&r.NodeID); err != nil {
		return err
	}
	if err := dec.ReadUInt32(&r.AttributeID); err != nil {
		return err
	}
	if err := dec.ReadString(&r.IndexRange); err != nil {
		return err
	}
	if err := dec.ReadQualifiedName(&r.DataEncoding); err != nil {
		return err
	}
	return nil
}

// ReadRequest reads one or more attributes of one or more nodes.
type ReadRequest struct {
	RequestHeader      RequestHeader
	MaxAge             float64
	TimestampsToReturn TimestampsToReturn
	NodesToRead        []ReadValueID
}

// Header returns the request header.
func (r *ReadRequest) Header() *RequestHeader {
	return &r.RequestHeader
}

// Encode writes the ReadRequest to the encoder.
func (r *ReadRequest) Encode(enc Encoder) error {
	if err := r.RequestHeader.Encode(enc); err != nil {
		return err
	}
	if err := enc.WriteDouble(r.MaxAge); err != nil {
		return err
	}
	if err := enc.WriteInt32(int32(r.TimestampsToReturn)); err != nil {
		return err
	}
	if err := writeStructArray(enc, r.NodesToRead); err != nil {
		return err
	}
	return nil
}

// Decode reads the ReadRequest from the decoder.
func (r *ReadRequest) Decode(dec Decoder) error {
	if err := r.RequestHeader.Decode(dec); err != nil {
		return err
	}
	if err := dec.ReadDouble(&r.MaxAge); err != nil {
		return err
	}
	var timestampsToReturn int32
	if err := dec.ReadInt32(&timestampsToReturn); err != nil {
		return err
	}
	r.TimestampsToReturn = TimestampsToReturn(timestampsToReturn)
	nodesToRead, err := readStructArray[ReadValueID](dec)
	if err != nil {
		return err
	}
	r.NodesToRead = nodesToRead
	return nil
}

// ReadResponse returns a DataValue for each ReadValueID of the request.
type ReadResponse struct {
	ResponseHeader  ResponseHeader
	Results         []*DataValue
	DiagnosticInfos []*DiagnosticInfo
}

// Header returns the response header.
func (r *ReadResponse) Header() *ResponseHeader {
	return &r.ResponseHeader
}

// Encode writes the ReadResponse to the encoder.
func (r *ReadResponse) Encode(enc Encoder) error {
	if err := r.ResponseHeader.Encode(enc); err != nil {
		return err
	}
	if err := enc.WriteDataValueArray(r.Results); err != nil {
		return err
	}
	if err := enc.WriteDiagnosticInfoArray(r.DiagnosticInfos); err != nil {
		return err
	}
	return nil
}

// Decode reads the ReadResponse from the decoder.
func (r *ReadResponse) Decode(dec Decoder) error {
	if err := r.ResponseHeader.Decode(dec); err != nil {
		return err
	}
	if err := dec.ReadDataValueArray(&r.Results); err != nil {
		return err
	}
	if err := dec.ReadDiagnosticInfoArray(&r.DiagnosticInfos); err != nil {
		return err
	}
	return nil
}

// CreateSubscriptionRequest creates a subscription.
type CreateSubscriptionRequest struct {
	RequestHeader               RequestHeader
	RequestedPublishingInterval float64
	RequestedLifetimeCount      uint32
	RequestedMaxKeepAliveCount  uint32
	MaxNotificationsPerPublish  uint32
	PublishingEnabled           bool
	Priority                    byte
}

// Header returns the request header.
func (r *CreateSubscriptionRequest) Header() *RequestHeader {
	return &r.RequestHeader
}

// Encode writes the CreateSubscriptionRequest to the encoder.
func (r *CreateSubscriptionRequest) Encode(enc Encoder) error {
	if err := r.RequestHeader.Encode(enc); err != nil {
		return err
	}
	if err := enc.WriteDouble(r.RequestedPublishingInterval); err != nil {
		return err
	}
	if err := enc.WriteUInt32(r.RequestedLifetimeCount); err != nil {
		return err
	}
	if err := enc.WriteUInt32(r.RequestedMaxKeepAliveCount); err != nil {
		return err
	}
	if err := enc.WriteUInt32(r.MaxNotificationsPerPublish); err != nil {
		return err
	}
	if err := enc.WriteBoolean(r.PublishingEnabled); err != nil {
		return err
	}
	if err := enc.WriteByte(r.Priority); err != nil {
		return err
	}
	return nil
}

// Decode reads the CreateSubscriptionRequest from the decoder.
func (r *CreateSubscriptionRequest) Decode(dec Decoder) error {
	if err := r.RequestHeader.Decode(dec); err != nil {
		return err
	}
	if err := dec.ReadDouble(&r.RequestedPublishingInterval); err != nil {
		return err
	}
	if err := dec.ReadUInt32(&r.RequestedLifetimeCount); err != nil {
		return err
	}
	if err := dec.ReadUInt32(&r.RequestedMaxKeepAliveCount); err != nil {
		return err
	}
	if err := dec.ReadUInt32(&r.MaxNotificationsPerPublish); err != nil {
		return err
	}
	if err := dec.ReadBoolean(&r.PublishingEnabled); err != nil {
		return err
	}
	if err := dec.ReadByte(&r.Priority); err != nil {
		return err
	}
	return nil
}

// CreateSubscriptionResponse returns the id and the revised parameters of the subscription.
type CreateSubscriptionResponse struct {
	ResponseHeader            ResponseHeader
	SubscriptionID            uint32
	RevisedPublishingInterval float64
	RevisedLifetimeCount      uint32
	RevisedMaxKeepAliveCount  uint32
}

// Header returns the response header.
func (r *CreateSubscriptionResponse) Header() *ResponseHeader {
	return &r.ResponseHeader
}

// Encode writes the CreateSubscriptionResponse to the encoder.
func (r *CreateSubscriptionResponse) Encode(enc Encoder) error {
	if err := r.ResponseHeader.Encode(enc); err != nil {
		return err
	}
	if err := enc.WriteUInt32(r.SubscriptionID); err != nil {
		return err
	}
	if err := enc.WriteDouble(r.RevisedPublishingInterval); err != nil {
		return err
	}
	if err := enc.WriteUInt32(r.RevisedLifetimeCount); err != nil {
		return err
	}
	if err := enc.WriteUInt32(r.RevisedMaxKeepAliveCount); err != nil {
		return err
	}
	return nil
}

// Decode reads the CreateSubscriptionResponse from the decoder.
func (r *CreateSubscriptionResponse) Decode(dec Decoder) error {
	if err := r.ResponseHeader.Decode(dec); err != nil {
		return err
	}
	if err := dec.ReadUInt32(&r.SubscriptionID); err != nil {
		return err
	}
	if err := dec.ReadDouble(&r.RevisedPublishingInterval); err != nil {
		return err
	}
	if err := dec.ReadUInt32(&r.RevisedLifetimeCount); err != nil {
		return err
	}
	if err := dec.ReadUInt32(&r.RevisedMaxKeepAliveCount); err != nil {
		return err
	}
	return nil
}

// ModifySubscriptionRequest modifies the parameters of a subscription.
type ModifySubscriptionRequest struct {
	RequestHeader               RequestHeader
	SubscriptionID              uint32
	RequestedPublishingInterval float64
	RequestedLifetimeCount      uint32
	RequestedMaxKeepAliveCount  uint32
	MaxNotificationsPerPublish  uint32
	Priority                    byte
}

// Header returns the request header.
func (r *ModifySubscriptionRequest) Header() *RequestHeader {
	return &r.RequestHeader
}

// Encode writes the ModifySubscriptionRequest to the encoder.
func (r *ModifySubscriptionRequest) Encode(enc Encoder) error {
	if err := r.RequestHeader.Encode(enc); err != nil {
		return err
	}
	if err := enc.WriteUInt32(r.SubscriptionID); err != nil {
		return err
	}
	if err := enc.WriteDouble(r.RequestedPublishingInterval); err != nil {
		return err
	}
	if err := enc.WriteUInt32(r.RequestedLifetimeCount); err != nil {
		return err
	}
	if err := enc.WriteUInt32(r.RequestedMaxKeepAliveCount); err != nil {
		return err
	}
	if err := enc.WriteUInt32(r.MaxNotificationsPerPublish); err != nil {
		return err
	}
	if err := enc.WriteByte(r.Priority); err != nil {
		return err
	}
	return nil
}

// Decode reads the ModifySubscriptionRequest from the decoder.
func (r *ModifySubscriptionRequest) Decode(dec Decoder) error {
	if err := r.RequestHeader.Decode(dec); err != nil {
		return err
	}
	if err := dec.ReadUInt32(&r.SubscriptionID); err != nil {
		return err
	}
	if err := dec.ReadDouble(&r.RequestedPublishingInterval); err != nil {
		return err
	}
	if err := dec.ReadUInt32(&r.RequestedLifetimeCount); err != nil {
		return err
	}
	if err := dec.ReadUInt32(&r.RequestedMaxKeepAliveCount); err != nil {
		return err
	}
	if err := dec.ReadUInt32(&r.MaxNotificationsPerPublish); err != nil {
		return err
	}
	if err := dec.ReadByte(&r.Priority); err != nil {
		return err
	}
	return nil
}

type ModifySubscriptionResponse struct {
	ResponseHeader            ResponseHeader
	RevisedPublishingInterval float64
	RevisedLifetimeCount      uint32
	RevisedMaxKeepAliveCount  uint32
}

// Header returns the response header.
func (r *ModifySubscriptionResponse) Header() *ResponseHeader {
	return &r.ResponseHeader
}

// Encode writes the ModifySubscriptionResponse to the encoder.
func (r *ModifySubscriptionResponse) Encode(enc Encoder) error {
	if err := r.ResponseHeader.Encode(enc); err != nil {
		return err
	}
	if err := enc.WriteDouble(r.RevisedPublishingInterval); err != nil {
		return err
	}
	if err := enc.WriteUInt32(r.RevisedLifetimeCount); err != nil {
		return err
	}
	if err := enc.WriteUInt32(r.RevisedMaxKeepAliveCount); err != nil {
		return err
	}
	return nil
}

// Decode reads the ModifySubscriptionResponse from the decoder.
func (r *ModifySubscriptionResponse) Decode(dec Decoder) error {
	if err := r.ResponseHeader.Decode(dec); err != nil {
		return err
	}
	if err := dec.ReadDouble(&r.RevisedPublishingInterval); err != nil {
		return err
	}
	if err := dec.ReadUInt32(&r.RevisedLifetimeCount); err != nil {
		return err
	}
	if err := dec.ReadUInt32(&r.RevisedMaxKeepAliveCount); err != nil {
		return err
	}
	return nil
}

// SetPublishingModeRequest enables or disables publishing of one or more subscriptions.
type SetPublishingModeRequest struct {
	RequestHeader     RequestHeader
	PublishingEnabled bool
	SubscriptionIDs   []uint32
}

// Header returns the request header.
func (r *SetPublishingModeRequest) Header() *RequestHeader {
	return &r.RequestHeader
}

// Encode writes the SetPublishingModeRequest to the encoder.
func (r *SetPublishingModeRequest) Encode(enc Encoder) error {
	if err := r.RequestHeader.Encode(enc); err != nil {
		return err
	}
	if err := enc.WriteBoolean(r.PublishingEnabled); err != nil {
		return err
	}
	if err := enc.WriteUInt32Array(r.SubscriptionIDs); err != nil {
		return err
	}
	return nil
}

// Decode reads the SetPublishingModeRequest from the decoder.
func (r *SetPublishingModeRequest) Decode(dec Decoder) error {
	if err := r.RequestHeader.Decode(dec); err != nil {
		return err
	}
	if err := dec.ReadBoolean(&r.PublishingEnabled); err != nil {
		return err
	}
	if err := dec.ReadUInt32Array(&r.SubscriptionIDs); err != nil {
		return err
	}
	return nil
}

type SetPublishingModeResponse struct {
	ResponseHeader  ResponseHeader
	Results         []StatusCode
	DiagnosticInfos []*DiagnosticInfo
}

// Header returns the response header.
func (r *SetPublishingModeResponse) Header() *ResponseHeader {
	return &r.ResponseHeader
}

// Encode writes the SetPublishingModeResponse to the encoder.
func (r *SetPublishingModeResponse) Encode(enc Encoder) error {
	if err := r.ResponseHeader.Encode(enc); err != nil {
		return err
	}
	if err := enc.WriteStatusCodeArray(r.Results); err != nil {
		return err
	}
	if err := enc.WriteDiagnosticInfoArray(r.DiagnosticInfos); err != nil {
		return err
	}
	return nil
}

// Decode reads the SetPublishingModeResponse from the decoder.
func (r *SetPublishingModeResponse) Decode(dec Decoder) error {
	if err := r.ResponseHeader.Decode(dec); err != nil {
		return err
	}
	if err := dec.ReadStatusCodeArray(&r.Results); err != nil {
		return err
	}
	if err := dec.ReadDiagnosticInfoArray(&r.DiagnosticInfos); err != nil {
		return err
	}
	return nil
}

// NotificationMessage carries the notifications of one publishing cycle.
// An empty NotificationData is a keep-alive.
type NotificationMessage struct {
	SequenceNumber   uint32
	PublishTime      time.Time
	NotificationData []*ExtensionObject
}

// Encode writes the NotificationMessage to the encoder.
func (r *NotificationMessage) Encode(enc Encoder) error {
	if err := enc.WriteUInt32(r.SequenceNumber); err != nil {
		return err
	}
	if err := enc.WriteDateTime(r.PublishTime); err != nil {
		return err
	}
	if err := enc.WriteExtensionObjectArray(r.NotificationData); err != nil {
		return err
	}
	return nil
}

// Decode reads the NotificationMessage from the decoder.
func (r *NotificationMessage) Decode(dec Decoder) error {
	if err := dec.ReadUInt32(&r.SequenceNumber); err != nil {
		return err
	}
	if err := dec.ReadDateTime(&r.PublishTime); err != nil {
		return err
	}
	if err := dec.ReadExtensionObjectArray(&r.NotificationData); err != nil {
		return err
	}
	return nil
}

type MonitoredItemNotification struct {
	ClientHandle uint32
	Value        *DataValue
}

// Encode writes the MonitoredItemNotification to the encoder.
func (r *MonitoredItemNotification) Encode(enc Encoder) error {
	if err := enc.WriteUInt32(r.ClientHandle); err != nil {
		return err
	}
	if err := enc.WriteDataValue(r.Value); err != nil {
		return err
	}
	return nil
}

// Decode reads the MonitoredItemNotification from the decoder.
func (r *MonitoredItemNotification) Decode(dec Decoder) error {
	if err := dec.ReadUInt32(&r.ClientHandle); err != nil {
		return err
	}
	if err := dec.ReadDataValue(&r.Value); err != nil {
		return err
	}
	return nil
}

// DataChangeNotification reports changes of the values of monitored items.
type DataChangeNotification struct {
	MonitoredItems  []MonitoredItemNotification
	DiagnosticInfos []*DiagnosticInfo
}

// Encode writes the DataChangeNotification to the encoder.
func (r *DataChangeNotification) Encode(enc Encoder) error {
	if err := writeStructArray(enc, r.MonitoredItems); err != nil {
		return err
	}
	if err := enc.WriteDiagnosticInfoArray(r.DiagnosticInfos); err != nil {
		return err
	}
	return nil
}

// Decode reads the DataChangeNotification from the decoder.
func (r *DataChangeNotification) Decode(dec Decoder) error {
	monitoredItems, err := readStructArray[MonitoredItemNotification](dec)
	if err != nil {
		return err
	}
	r.MonitoredItems = monitoredItems
	if err := dec.ReadDiagnosticInfoArray(&r.DiagnosticInfos); err != nil {
		return err
	}
	return nil
}

// StatusChangeNotification reports a change of the status of a subscription.
type StatusChangeNotification struct {
	Status         StatusCode
	DiagnosticInfo *DiagnosticInfo
}

// Encode writes the StatusChangeNotification to the encoder.
func (r *StatusChangeNotification) Encode(enc Encoder) error {
	if err := enc.WriteStatusCode(r.Status); err != nil {
		return err
	}
	if err := enc.WriteDiagnosticInfo(r.DiagnosticInfo); err != nil {
		return err
	}
	return nil
}

// Decode reads the StatusChangeNotification from the decoder.
func (r *StatusChangeNotification) Decode(dec Decoder) error {
	if err := dec.ReadStatusCode(&r.Status); err != nil {
		return err
	}
	if err := dec.ReadDiagnosticInfo(&r.DiagnosticInfo); err != nil {
		return err
	}
	return nil
}

// SubscriptionAcknowledgement acknowledges the receipt of a NotificationMessage.
type SubscriptionAcknowledgement struct {
	SubscriptionID uint32
	SequenceNumber uint32
}

// Encode writes the SubscriptionAcknowledgement to the encoder.
func (r *SubscriptionAcknowledgement) Encode(enc Encoder) error {
	if err := enc.WriteUInt32(r.SubscriptionID); err != nil {
		return err
	}
	if err := enc.WriteUInt32(r.SequenceNumber); err != nil {
		return err
	}
	return nil
}

// Decode reads the SubscriptionAcknowledgement from the decoder.
func (r *SubscriptionAcknowledgement) Decode(dec Decoder) error {
	if err := dec.ReadUInt32(&r.SubscriptionID); err != nil {
		return err
	}
	if err := dec.ReadUInt32(&r.SequenceNumber); err != nil {
		return err
	}
	return nil
}

// PublishRequest acknowledges received notifications and asks the server for the next NotificationMessage.
type PublishRequest struct {
	RequestHeader                RequestHeader
	SubscriptionAcknowledgements []SubscriptionAcknowledgement
}

// Header returns the request header.
func (r *PublishRequest) Header() *RequestHeader {
	return &r.RequestHeader
}

// Encode writes the PublishRequest to the encoder.
func (r *PublishRequest) Encode(enc Encoder) error {
	if err := r.RequestHeader.Encode(enc); err != nil {
		return err
	}
	if err := writeStructArray(enc, r.SubscriptionAcknowledgements); err != nil {
		return err
	}
	return nil
}

// Decode reads the PublishRequest from the decoder.
func (r *PublishRequest) Decode(dec Decoder) error {
	if err := r.RequestHeader.Decode(dec); err != nil {
		return err
	}
	subscriptionAcknowledgements, err := readStructArray[SubscriptionAcknowledgement](dec)
	if err != nil {
		return err
	}
	r.SubscriptionAcknowledgements = subscriptionAcknowledgements
	return nil
}

// PublishResponse returns a NotificationMessage, and the results of the acknowledgements of the request.
type PublishResponse struct {
	ResponseHeader           ResponseHeader
	SubscriptionID           uint32
	AvailableSequenceNumbers []uint32
	MoreNotifications        bool
	NotificationMessage      NotificationMessage
	Results                  []StatusCode
	DiagnosticInfos          []*DiagnosticInfo
}

// Header returns the response header.
func (r *PublishResponse) Header() *ResponseHeader {
	return &r.ResponseHeader
}

// Encode writes the PublishResponse to the encoder.
func (r *PublishResponse) Encode(enc Encoder) error {
	if err := r.ResponseHeader.Encode(enc); err != nil {
		return err
	}
	if err := enc.WriteUInt32(r.SubscriptionID); err != nil {
		return err
	}
	if err := enc.WriteUInt32Array(r.AvailableSequenceNumbers); err != nil {
		return err
	}
	if err := enc.WriteBoolean(r.MoreNotifications); err != nil {
		return err
	}
	if err := r.NotificationMessage.Encode(enc); err != nil {
		return err
	}
	if err := enc.WriteStatusCodeArray(r.Results); err != nil {
		return err
	}
	if err := enc.WriteDiagnosticInfoArray(r.DiagnosticInfos); err != nil {
		return err
	}
	return nil
}

// Decode reads the PublishResponse from the decoder.
func (r *PublishResponse) Decode(dec Decoder) error {
	if err := r.ResponseHeader.Decode(dec); err != nil {
		return err
	}
	if err := dec.ReadUInt32(&r.SubscriptionID); err != nil {
		return err
	}
	if err := dec.ReadUInt32Array(&r.AvailableSequenceNumbers); err != nil {
		return err
	}
	if err := dec.ReadBoolean(&r.MoreNotifications); err != nil {
		return err
	}
	if err := r.NotificationMessage.Decode(dec); err != nil {
		return err
	}
	if err := dec.ReadStatusCodeArray(&r.Results); err != nil {
		return err
	}
	if err := dec.ReadDiagnosticInfoArray(&r.DiagnosticInfos); err != nil {
		return err
	}
	return nil
}

// RepublishRequest asks the server to resend a NotificationMessage that is still in its retransmission queue.
type RepublishRequest struct {
	RequestHeader            RequestHeader
	SubscriptionID           uint32
	RetransmitSequenceNumber uint32
}

// Header returns the request header.
func (r *RepublishRequest) Header() *RequestHeader {
	return &r.RequestHeader
}

// Encode writes the RepublishRequest to the encoder.
func (r *RepublishRequest) Encode(enc Encoder) error {
	if err := r.RequestHeader.Encode(enc); err != nil {
		return err
	}
	if err := enc.WriteUInt32(r.SubscriptionID); err != nil {
		return err
	}
	if err := enc.WriteUInt32(r.RetransmitSequenceNumber); err != nil {
		return err
	}
	return nil
}

// Decode reads the RepublishRequest from the decoder.
func (r *RepublishRequest) Decode(dec Decoder) error {
	if err := r.RequestHeader.Decode(dec); err != nil {
		return err
	}
	if err := dec.ReadUInt32(&r.SubscriptionID); err != nil {
		return err
	}
	if err := dec.ReadUInt32(&r.RetransmitSequenceNumber); err != nil {
		return err
	}
	return nil
}

type RepublishResponse struct {
	ResponseHeader      ResponseHeader
	NotificationMessage NotificationMessage
}

// Header returns the response header.
func (r *RepublishResponse) Header() *ResponseHeader {
	return &r.ResponseHeader
}

// Encode writes the RepublishResponse to the encoder.
func (r *RepublishResponse) Encode(enc Encoder) error {
	if err := r.ResponseHeader.Encode(enc); err != nil {
		return err
	}
	if err := r.NotificationMessage.Encode(enc); err != nil {
		return err
	}
	return nil
}

// Decode reads the RepublishResponse from the decoder.
func (r *RepublishResponse) Decode(dec Decoder) error {
	if err := r.ResponseHeader.Decode(dec); err != nil {
		return err
	}
	if err := r.NotificationMessage.Decode(dec); err != nil {
		return err
	}
	return nil
}

type TransferResult struct {
	StatusCode               StatusCode
	AvailableSequenceNumbers []uint32
}

// Encode writes the TransferResult to the encoder.
func (r *TransferResult) Encode(enc Encoder) error {
	if err := enc.WriteStatusCode(r.StatusCode); err != nil {
		return err
	}
	if err := enc.WriteUInt32Array(r.AvailableSequenceNumbers); err != nil {
		return err
	}
	return nil
}

// Decode reads the TransferResult from the decoder.
func (r *TransferResult) Decode(dec Decoder) error {
	if err := dec.ReadStatusCode(&r.StatusCode); err != nil {
		return err
	}
	if err := dec.ReadUInt32Array(&r.AvailableSequenceNumbers); err != nil {
		return err
	}
	return nil
}

// TransferSubscriptionsRequest transfers subscriptions to the current session.
type TransferSubscriptionsRequest struct {
	RequestHeader     RequestHeader
	SubscriptionIDs   []uint32
	SendInitialValues bool
}

// Header returns the request header.
func (r *TransferSubscriptionsRequest) Header() *RequestHeader {
	return &r.RequestHeader
}

// Encode writes the TransferSubscriptionsRequest to the encoder.
func (r *TransferSubscriptionsRequest) Encode(enc Encoder) error {
	if err := r.RequestHeader.Encode(enc); err != nil {
		return err
	}
	if err := enc.WriteUInt32Array(r.SubscriptionIDs); err != nil {
		return err
	}
	if err := enc.WriteBoolean(r.SendInitialValues); err != nil {
		return err
	}
	return nil
}

// Decode reads the TransferSubscriptionsRequest from the decoder.
func (r *TransferSubscriptionsRequest) Decode(dec Decoder) error {
	if err := r.RequestHeader.Decode(dec); err != nil {
		return err
	}
	if err := dec.ReadUInt32Array(&r.SubscriptionIDs); err != nil {
		return err
	}
	if err := dec.ReadBoolean(&r.SendInitialValues); err != nil {
		return err
	}
	return nil
}

type TransferSubscriptionsResponse struct {
	ResponseHeader  ResponseHeader
	Results         []TransferResult
	DiagnosticInfos []*DiagnosticInfo
}

// Header returns the response header.
func (r *TransferSubscriptionsResponse) Header() *ResponseHeader {
	return &r.ResponseHeader
}

// Encode writes the TransferSubscriptionsResponse to the encoder.
func (r *TransferSubscriptionsResponse) Encode(enc Encoder) error {
	if err := r.ResponseHeader.Encode(enc); err != nil {
		return err
	}
	if err := writeStructArray(enc, r.Results); err != nil {
		return err
	}
	if err := enc.WriteDiagnosticInfoArray(r.DiagnosticInfos); err != nil {
		return err
	}
	return nil
}

// Decode reads the TransferSubscriptionsResponse from the decoder.
func (r *TransferSubscriptionsResponse) Decode(dec Decoder) error {
	if err := r.ResponseHeader.Decode(dec); err != nil {
		return err
	}
	results, err := readStructArray[TransferResult](dec)
	if err != nil {
		return err
	}
	r.Results = results
	if err := dec.ReadDiagnosticInfoArray(&r.DiagnosticInfos); err != nil {
		return err
	}
	return nil
}

// DeleteSubscriptionsRequest deletes one or more subscriptions.
type DeleteSubscriptionsRequest struct {
	RequestHeader   RequestHeader
	SubscriptionIDs []uint32
}

// Header returns the request header.
func (r *DeleteSubscriptionsRequest) Header() *RequestHeader {
	return &r.RequestHeader
}

// Encode writes the DeleteSubscriptionsRequest to the encoder.
func (r *DeleteSubscriptionsRequest) Encode(enc Encoder) error {
	if err := r.RequestHeader.Encode(enc); err != nil {
		return err
	}
	if err := enc.WriteUInt32Array(r.SubscriptionIDs); err != nil {
		return err
	}
	return nil
}

// Decode reads the DeleteSubscriptionsRequest from the decoder.
func (r *DeleteSubscriptionsRequest) Decode(dec Decoder) error {
	if err := r.RequestHeader.Decode(dec); err != nil {
		return err
	}
	if err := dec.ReadUInt32Array(&r.SubscriptionIDs); err != nil {
		return err
	}
	return nil
}

type DeleteSubscriptionsResponse struct {
	ResponseHeader  ResponseHeader
	Results         []StatusCode
	DiagnosticInfos []*DiagnosticInfo
}

// Header returns the response header.
func (r *DeleteSubscriptionsResponse) Header() *ResponseHeader {
	return &r.ResponseHeader
}

// Encode writes the DeleteSubscriptionsResponse to the encoder.
func (r *DeleteSubscriptionsResponse) Encode(enc Encoder) error {
	if err := r.ResponseHeader.Encode(enc); err != nil {
		return err
	}
	if err := enc.WriteStatusCodeArray(r.Results); err != nil {
		return err
	}
	if err := enc.WriteDiagnosticInfoArray(r.DiagnosticInfos); err != nil {
		return err
	}
	return nil
}

// Decode reads the DeleteSubscriptionsResponse from the decoder.
func (r *DeleteSubscriptionsResponse) Decode(dec Decoder) error {
	if err := r.ResponseHeader.Decode(dec); err != nil {
		return err
	}
	if err := dec.ReadStatusCodeArray(&r.Results); err != nil {
		return err
	}
	if err := dec.ReadDiagnosticInfoArray(&r.DiagnosticInfos); err != nil {
		return err
	}
	return nil
}
