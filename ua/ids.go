// Copyright 2021 Converter Systems LLC. All rights reserved.

package ua

import "sort"

// Well-known DataType NodeIDs.
var (
	DataTypeIDBoolean                       = NewNodeIDNumeric(0, 1)
	DataTypeIDSByte                         = NewNodeIDNumeric(0, 2)
	DataTypeIDByte                          = NewNodeIDNumeric(0, 3)
	DataTypeIDInt16                         = NewNodeIDNumeric(0, 4)
	DataTypeIDUInt16                        = NewNodeIDNumeric(0, 5)
	DataTypeIDInt32                         = NewNodeIDNumeric(0, 6)
	DataTypeIDUInt32                        = NewNodeIDNumeric(0, 7)
	DataTypeIDInt64                         = NewNodeIDNumeric(0, 8)
	DataTypeIDUInt64                        = NewNodeIDNumeric(0, 9)
	DataTypeIDFloat                         = NewNodeIDNumeric(0, 10)
	DataTypeIDDouble                        = NewNodeIDNumeric(0, 11)
	DataTypeIDString                        = NewNodeIDNumeric(0, 12)
	DataTypeIDDateTime                      = NewNodeIDNumeric(0, 13)
	DataTypeIDGUID                          = NewNodeIDNumeric(0, 14)
	DataTypeIDByteString                    = NewNodeIDNumeric(0, 15)
	DataTypeIDXMLElement                    = NewNodeIDNumeric(0, 16)
	DataTypeIDNodeID                        = NewNodeIDNumeric(0, 17)
	DataTypeIDExpandedNodeID                = NewNodeIDNumeric(0, 18)
	DataTypeIDStatusCode                    = NewNodeIDNumeric(0, 19)
	DataTypeIDQualifiedName                 = NewNodeIDNumeric(0, 20)
	DataTypeIDLocalizedText                 = NewNodeIDNumeric(0, 21)
	DataTypeIDStructure                     = NewNodeIDNumeric(0, 22)
	DataTypeIDDataValue                     = NewNodeIDNumeric(0, 23)
	DataTypeIDBaseDataType                  = NewNodeIDNumeric(0, 24)
	DataTypeIDDiagnosticInfo                = NewNodeIDNumeric(0, 25)
	DataTypeIDTimestampsToReturn            = NewNodeIDNumeric(0, 625)
	DataTypeIDRequestHeader                 = NewNodeIDNumeric(0, 389)
	DataTypeIDResponseHeader                = NewNodeIDNumeric(0, 392)
	DataTypeIDAnonymousIdentityToken        = NewNodeIDNumeric(0, 319)
	DataTypeIDUserNameIdentityToken         = NewNodeIDNumeric(0, 322)
	DataTypeIDX509IdentityToken             = NewNodeIDNumeric(0, 325)
	DataTypeIDReadValueID                   = NewNodeIDNumeric(0, 626)
	DataTypeIDReadRequest                   = NewNodeIDNumeric(0, 629)
	DataTypeIDReadResponse                  = NewNodeIDNumeric(0, 632)
	DataTypeIDCreateSubscriptionRequest     = NewNodeIDNumeric(0, 785)
	DataTypeIDCreateSubscriptionResponse    = NewNodeIDNumeric(0, 788)
	DataTypeIDModifySubscriptionRequest     = NewNodeIDNumeric(0, 791)
	DataTypeIDModifySubscriptionResponse    = NewNodeIDNumeric(0, 794)
	DataTypeIDSetPublishingModeRequest      = NewNodeIDNumeric(0, 797)
	DataTypeIDSetPublishingModeResponse     = NewNodeIDNumeric(0, 800)
	DataTypeIDNotificationMessage           = NewNodeIDNumeric(0, 803)
	DataTypeIDMonitoredItemNotification     = NewNodeIDNumeric(0, 806)
	DataTypeIDDataChangeNotification        = NewNodeIDNumeric(0, 809)
	DataTypeIDStatusChangeNotification      = NewNodeIDNumeric(0, 818)
	DataTypeIDSubscriptionAcknowledgement   = NewNodeIDNumeric(0, 821)
	DataTypeIDPublishRequest                = NewNodeIDNumeric(0, 824)
	DataTypeIDPublishResponse               = NewNodeIDNumeric(0, 827)
	DataTypeIDRepublishRequest              = NewNodeIDNumeric(0, 830)
	DataTypeIDRepublishResponse             = NewNodeIDNumeric(0, 833)
	DataTypeIDTransferResult                = NewNodeIDNumeric(0, 836)
	DataTypeIDTransferSubscriptionsRequest  = NewNodeIDNumeric(0, 839)
	DataTypeIDTransferSubscriptionsResponse = NewNodeIDNumeric(0, 842)
	DataTypeIDDeleteSubscriptionsRequest    = NewNodeIDNumeric(0, 845)
	DataTypeIDDeleteSubscriptionsResponse   = NewNodeIDNumeric(0, 848)
)

// Well-known encoding Object NodeIDs.
var (
	ObjectIDRequestHeaderEncodingDefaultXML                    = NewNodeIDNumeric(0, 390)
	ObjectIDRequestHeaderEncodingDefaultBinary                 = NewNodeIDNumeric(0, 391)
	ObjectIDResponseHeaderEncodingDefaultXML                   = NewNodeIDNumeric(0, 393)
	ObjectIDResponseHeaderEncodingDefaultBinary                = NewNodeIDNumeric(0, 394)
	ObjectIDAnonymousIdentityTokenEncodingDefaultXML           = NewNodeIDNumeric(0, 320)
	ObjectIDAnonymousIdentityTokenEncodingDefaultBinary        = NewNodeIDNumeric(0, 321)
	ObjectIDUserNameIdentityTokenEncodingDefaultXML            = NewNodeIDNumeric(0, 323)
	ObjectIDUserNameIdentityTokenEncodingDefaultBinary         = NewNodeIDNumeric(0, 324)
	ObjectIDX509IdentityTokenEncodingDefaultXML                = NewNodeIDNumeric(0, 326)
	ObjectIDX509IdentityTokenEncodingDefaultBinary             = NewNodeIDNumeric(0, 327)
	ObjectIDReadValueIDEncodingDefaultXML                      = NewNodeIDNumeric(0, 627)
	ObjectIDReadValueIDEncodingDefaultBinary                   = NewNodeIDNumeric(0, 628)
	ObjectIDReadRequestEncodingDefaultXML                      = NewNodeIDNumeric(0, 630)
	ObjectIDReadRequestEncodingDefaultBinary                   = NewNodeIDNumeric(0, 631)
	ObjectIDReadResponseEncodingDefaultXML                     = NewNodeIDNumeric(0, 633)
	ObjectIDReadResponseEncodingDefaultBinary                  = NewNodeIDNumeric(0, 634)
	ObjectIDCreateSubscriptionRequestEncodingDefaultXML        = NewNodeIDNumeric(0, 786)
	ObjectIDCreateSubscriptionRequestEncodingDefaultBinary     = NewNodeIDNumeric(0, 787)
	ObjectIDCreateSubscriptionResponseEncodingDefaultXML       = NewNodeIDNumeric(0, 789)
	ObjectIDCreateSubscriptionResponseEncodingDefaultBinary    = NewNodeIDNumeric(0, 790)
	ObjectIDModifySubscriptionRequestEncodingDefaultXML        = NewNodeIDNumeric(0, 792)
	ObjectIDModifySubscriptionRequestEncodingDefaultBinary     = NewNodeIDNumeric(0, 793)
	ObjectIDModifySubscriptionResponseEncodingDefaultXML       = NewNodeIDNumeric(0, 795)
	ObjectIDModifySubscriptionResponseEncodingDefaultBinary    = NewNodeIDNumeric(0, 796)
	ObjectIDSetPublishingModeRequestEncodingDefaultXML         = NewNodeIDNumeric(0, 798)
	ObjectIDSetPublishingModeRequestEncodingDefaultBinary      = NewNodeIDNumeric(0, 799)
	ObjectIDSetPublishingModeResponseEncodingDefaultXML        = NewNodeIDNumeric(0, 801)
	ObjectIDSetPublishingModeResponseEncodingDefaultBinary     = NewNodeIDNumeric(0, 802)
	ObjectIDNotificationMessageEncodingDefaultXML              = NewNodeIDNumeric(0, 804)
	ObjectIDNotificationMessageEncodingDefaultBinary           = NewNodeIDNumeric(0, 805)
	ObjectIDMonitoredItemNotificationEncodingDefaultXML        = NewNodeIDNumeric(0, 807)
	ObjectIDMonitoredItemNotificationEncodingDefaultBinary     = NewNodeIDNumeric(0, 808)
	ObjectIDDataChangeNotificationEncodingDefaultXML           = NewNodeIDNumeric(0, 810)
	ObjectIDDataChangeNotificationEncodingDefaultBinary        = NewNodeIDNumeric(0, 811)
	ObjectIDStatusChangeNotificationEncodingDefaultXML         = NewNodeIDNumeric(0, 819)
	ObjectIDStatusChangeNotificationEncodingDefaultBinary      = NewNodeIDNumeric(0, 820)
	ObjectIDSubscriptionAcknowledgementEncodingDefaultXML      = NewNodeIDNumeric(0, 822)
	ObjectIDSubscriptionAcknowledgementEncodingDefaultBinary   = NewNodeIDNumeric(0, 823)
	ObjectIDPublishRequestEncodingDefaultXML                   = NewNodeIDNumeric(0, 825)
	ObjectIDPublishRequestEncodingDefaultBinary                = NewNodeIDNumeric(0, 826)
	ObjectIDPublishResponseEncodingDefaultXML                  = NewNodeIDNumeric(0, 828)
	ObjectIDPublishResponseEncodingDefaultBinary               = NewNodeIDNumeric(0, 829)
	ObjectIDRepublishRequestEncodingDefaultXML                 = NewNodeIDNumeric(0, 831)
	ObjectIDRepublishRequestEncodingDefaultBinary              = NewNodeIDNumeric(0, 832)
	ObjectIDRepublishResponseEncodingDefaultXML                = NewNodeIDNumeric(0, 834)
	ObjectIDRepublishResponseEncodingDefaultBinary             = NewNodeIDNumeric(0, 835)
	ObjectIDTransferResultEncodingDefaultXML                   = NewNodeIDNumeric(0, 837)
	ObjectIDTransferResultEncodingDefaultBinary                = NewNodeIDNumeric(0, 838)
	ObjectIDTransferSubscriptionsRequestEncodingDefaultXML     = NewNodeIDNumeric(0, 840)
	ObjectIDTransferSubscriptionsRequestEncodingDefaultBinary  = NewNodeIDNumeric(0, 841)
	ObjectIDTransferSubscriptionsResponseEncodingDefaultXML    = NewNodeIDNumeric(0, 843)
	ObjectIDTransferSubscriptionsResponseEncodingDefaultBinary = NewNodeIDNumeric(0, 844)
	ObjectIDDeleteSubscriptionsRequestEncodingDefaultXML       = NewNodeIDNumeric(0, 846)
	ObjectIDDeleteSubscriptionsRequestEncodingDefaultBinary    = NewNodeIDNumeric(0, 847)
	ObjectIDDeleteSubscriptionsResponseEncodingDefaultXML      = NewNodeIDNumeric(0, 849)
	ObjectIDDeleteSubscriptionsResponseEncodingDefaultBinary   = NewNodeIDNumeric(0, 850)
)

// wellKnownIDs maps the symbolic names used in the NodeIds.csv published by
// the OPC Foundation to their NodeIDs.
var wellKnownIDs = map[string]NodeID{
	"Boolean":                                               DataTypeIDBoolean,
	"SByte":                                                 DataTypeIDSByte,
	"Byte":                                                  DataTypeIDByte,
	"Int16":                                                 DataTypeIDInt16,
	"UInt16":                                                DataTypeIDUInt16,
	"Int32":                                                 DataTypeIDInt32,
	"UInt32":                                                DataTypeIDUInt32,
	"Int64":                                                 DataTypeIDInt64,
	"UInt64":                                                DataTypeIDUInt64,
	"Float":                                                 DataTypeIDFloat,
	"Double":                                                DataTypeIDDouble,
	"String":                                                DataTypeIDString,
	"DateTime":                                              DataTypeIDDateTime,
	"Guid":                                                  DataTypeIDGUID,
	"ByteString":                                            DataTypeIDByteString,
	"XmlElement":                                            DataTypeIDXMLElement,
	"NodeId":                                                DataTypeIDNodeID,
	"ExpandedNodeId":                                        DataTypeIDExpandedNodeID,
	"StatusCode":                                            DataTypeIDStatusCode,
	"QualifiedName":                                         DataTypeIDQualifiedName,
	"LocalizedText":                                         DataTypeIDLocalizedText,
	"Structure":                                             DataTypeIDStructure,
	"DataValue":                                             DataTypeIDDataValue,
	"BaseDataType":                                          DataTypeIDBaseDataType,
	"DiagnosticInfo":                                        DataTypeIDDiagnosticInfo,
	"TimestampsToReturn":                                    DataTypeIDTimestampsToReturn,
	"RequestHeader":                                         DataTypeIDRequestHeader,
	"RequestHeader_Encoding_DefaultXml":                     ObjectIDRequestHeaderEncodingDefaultXML,
	"RequestHeader_Encoding_DefaultBinary":                  ObjectIDRequestHeaderEncodingDefaultBinary,
	"ResponseHeader":                                        DataTypeIDResponseHeader,
	"ResponseHeader_Encoding_DefaultXml":                    ObjectIDResponseHeaderEncodingDefaultXML,
	"ResponseHeader_Encoding_DefaultBinary":                 ObjectIDResponseHeaderEncodingDefaultBinary,
	"AnonymousIdentityToken":                                DataTypeIDAnonymousIdentityToken,
	"AnonymousIdentityToken_Encoding_DefaultXml":            ObjectIDAnonymousIdentityTokenEncodingDefaultXML,
	"AnonymousIdentityToken_Encoding_DefaultBinary":         ObjectIDAnonymousIdentityTokenEncodingDefaultBinary,
	"UserNameIdentityToken":                                 DataTypeIDUserNameIdentityToken,
	"UserNameIdentityToken_Encoding_DefaultXml":             ObjectIDUserNameIdentityTokenEncodingDefaultXML,
	"UserNameIdentityToken_Encoding_DefaultBinary":          ObjectIDUserNameIdentityTokenEncodingDefaultBinary,
	"X509IdentityToken":                                     DataTypeIDX509IdentityToken,
	"X509IdentityToken_Encoding_DefaultXml":                 ObjectIDX509IdentityTokenEncodingDefaultXML,
	"X509IdentityToken_Encoding_DefaultBinary":              ObjectIDX509IdentityTokenEncodingDefaultBinary,
	"ReadValueId":                                           DataTypeIDReadValueID,
	"ReadValueId_Encoding_DefaultXml":                       ObjectIDReadValueIDEncodingDefaultXML,
	"ReadValueId_Encoding_DefaultBinary":                    ObjectIDReadValueIDEncodingDefaultBinary,
	"ReadRequest":                                           DataTypeIDReadRequest,
	"ReadRequest_Encoding_DefaultXml":                       ObjectIDReadRequestEncodingDefaultXML,
	"ReadRequest_Encoding_DefaultBinary":                    ObjectIDReadRequestEncodingDefaultBinary,
	"ReadResponse":                                          DataTypeIDReadResponse,
	"ReadResponse_Encoding_DefaultXml":                      ObjectIDReadResponseEncodingDefaultXML,
	"ReadResponse_Encoding_DefaultBinary":                   ObjectIDReadResponseEncodingDefaultBinary,
	"CreateSubscriptionRequest":                             DataTypeIDCreateSubscriptionRequest,
	"CreateSubscriptionRequest_Encoding_DefaultXml":         ObjectIDCreateSubscriptionRequestEncodingDefaultXML,
	"CreateSubscriptionRequest_Encoding_DefaultBinary":      ObjectIDCreateSubscriptionRequestEncodingDefaultBinary,
	"CreateSubscriptionResponse":                            DataTypeIDCreateSubscriptionResponse,
	"CreateSubscriptionResponse_Encoding_DefaultXml":        ObjectIDCreateSubscriptionResponseEncodingDefaultXML,
	"CreateSubscriptionResponse_Encoding_DefaultBinary":     ObjectIDCreateSubscriptionResponseEncodingDefaultBinary,
	"ModifySubscriptionRequest":                             DataTypeIDModifySubscriptionRequest,
	"ModifySubscriptionRequest_Encoding_DefaultXml":         ObjectIDModifySubscriptionRequestEncodingDefaultXML,
	"ModifySubscriptionRequest_Encoding_DefaultBinary":      ObjectIDModifySubscriptionRequestEncodingDefaultBinary,
	"ModifySubscriptionResponse":                            DataTypeIDModifySubscriptionResponse,
	"ModifySubscriptionResponse_Encoding_DefaultXml":        ObjectIDModifySubscriptionResponseEncodingDefaultXML,
	"ModifySubscriptionResponse_Encoding_DefaultBinary":     ObjectIDModifySubscriptionResponseEncodingDefaultBinary,
	"SetPublishingModeRequest":                              DataTypeIDSetPublishingModeRequest,
	"SetPublishingModeRequest_Encoding_DefaultXml":          ObjectIDSetPublishingModeRequestEncodingDefaultXML,
	"SetPublishingModeRequest_Encoding_DefaultBinary":       ObjectIDSetPublishingModeRequestEncodingDefaultBinary,
	"SetPublishingModeResponse":                             DataTypeIDSetPublishingModeResponse,
	"SetPublishingModeResponse_Encoding_DefaultXml":         ObjectIDSetPublishingModeResponseEncodingDefaultXML,
	"SetPublishingModeResponse_Encoding_DefaultBinary":      ObjectIDSetPublishingModeResponseEncodingDefaultBinary,
	"NotificationMessage":                                   DataTypeIDNotificationMessage,
	"NotificationMessage_Encoding_DefaultXml":               ObjectIDNotificationMessageEncodingDefaultXML,
	"NotificationMessage_Encoding_DefaultBinary":            ObjectIDNotificationMessageEncodingDefaultBinary,
	"MonitoredItemNotification":                             DataTypeIDMonitoredItemNotification,
	"MonitoredItemNotification_Encoding_DefaultXml":         ObjectIDMonitoredItemNotificationEncodingDefaultXML,
	"MonitoredItemNotification_Encoding_DefaultBinary":      ObjectIDMonitoredItemNotificationEncodingDefaultBinary,
	"DataChangeNotification":                                DataTypeIDDataChangeNotification,
	"DataChangeNotification_Encoding_DefaultXml":            ObjectIDDataChangeNotificationEncodingDefaultXML,
	"DataChangeNotification_Encoding_DefaultBinary":         ObjectIDDataChangeNotificationEncodingDefaultBinary,
	"StatusChangeNotification":                              DataTypeIDStatusChangeNotification,
	"StatusChangeNotification_Encoding_DefaultXml":          ObjectIDStatusChangeNotificationEncodingDefaultXML,
	"StatusChangeNotification_Encoding_DefaultBinary":       ObjectIDStatusChangeNotificationEncodingDefaultBinary,
	"SubscriptionAcknowledgement":                           DataTypeIDSubscriptionAcknowledgement,
	"SubscriptionAcknowledgement_Encoding_DefaultXml":       ObjectIDSubscriptionAcknowledgementEncodingDefaultXML,
	"SubscriptionAcknowledgement_Encoding_DefaultBinary":    ObjectIDSubscriptionAcknowledgementEncodingDefaultBinary,
	"PublishRequest":                                        DataTypeIDPublishRequest,
	"PublishRequest_Encoding_DefaultXml":                    ObjectIDPublishRequestEncodingDefaultXML,
	"PublishRequest_Encoding_DefaultBinary":                 ObjectIDPublishRequestEncodingDefaultBinary,
	"PublishResponse":                                       DataTypeIDPublishResponse,
	"PublishResponse_Encoding_DefaultXml":                   ObjectIDPublishResponseEncodingDefaultXML,
	"PublishResponse_Encoding_DefaultBinary":                ObjectIDPublishResponseEncodingDefaultBinary,
	"RepublishRequest":                                      DataTypeIDRepublishRequest,
	"RepublishRequest_Encoding_DefaultXml":                  ObjectIDRepublishRequestEncodingDefaultXML,
	"RepublishRequest_Encoding_DefaultBinary":               ObjectIDRepublishRequestEncodingDefaultBinary,
	"RepublishResponse":                                     DataTypeIDRepublishResponse,
	"RepublishResponse_Encoding_DefaultXml":                 ObjectIDRepublishResponseEncodingDefaultXML,
	"RepublishResponse_Encoding_DefaultBinary":              ObjectIDRepublishResponseEncodingDefaultBinary,
	"TransferResult":                                        DataTypeIDTransferResult,
	"TransferResult_Encoding_DefaultXml":                    ObjectIDTransferResultEncodingDefaultXML,
	"TransferResult_Encoding_DefaultBinary":                 ObjectIDTransferResultEncodingDefaultBinary,
	"TransferSubscriptionsRequest":                          DataTypeIDTransferSubscriptionsRequest,
	"TransferSubscriptionsRequest_Encoding_DefaultXml":      ObjectIDTransferSubscriptionsRequestEncodingDefaultXML,
	"TransferSubscriptionsRequest_Encoding_DefaultBinary":   ObjectIDTransferSubscriptionsRequestEncodingDefaultBinary,
	"TransferSubscriptionsResponse":                         DataTypeIDTransferSubscriptionsResponse,
	"TransferSubscriptionsResponse_Encoding_DefaultXml":     ObjectIDTransferSubscriptionsResponseEncodingDefaultXML,
	"TransferSubscriptionsResponse_Encoding_DefaultBinary":  ObjectIDTransferSubscriptionsResponseEncodingDefaultBinary,
	"DeleteSubscriptionsRequest":                            DataTypeIDDeleteSubscriptionsRequest,
	"DeleteSubscriptionsRequest_Encoding_DefaultXml":        ObjectIDDeleteSubscriptionsRequestEncodingDefaultXML,
	"DeleteSubscriptionsRequest_Encoding_DefaultBinary":     ObjectIDDeleteSubscriptionsRequestEncodingDefaultBinary,
	"DeleteSubscriptionsResponse":                           DataTypeIDDeleteSubscriptionsResponse,
	"DeleteSubscriptionsResponse_Encoding_DefaultXml":       ObjectIDDeleteSubscriptionsResponseEncodingDefaultXML,
	"DeleteSubscriptionsResponse_Encoding_DefaultBinary":    ObjectIDDeleteSubscriptionsResponseEncodingDefaultBinary,
}

// WellKnownID returns the identifier registered under a symbolic name,
// e.g. WellKnownID("ReadRequest_Encoding_DefaultBinary").
func WellKnownID(name string) (ExpandedNodeID, bool) {
	id, ok := wellKnownIDs[name]
	if !ok {
		return NilExpandedNodeID, false
	}
	return NewExpandedNodeID(id), true
}

// WellKnownNames returns the symbolic names in the catalog, sorted.
func WellKnownNames() []string {
	names := make([]string, 0, len(wellKnownIDs))
	for name := range wellKnownIDs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// AttributeIDs
const (
	AttributeIDNodeID      uint32 = 1
	AttributeIDNodeClass   uint32 = 2
	AttributeIDBrowseName  uint32 = 3
	AttributeIDDisplayName uint32 = 4
	AttributeIDDescription uint32 = 5
	AttributeIDValue       uint32 = 13
	AttributeIDDataType    uint32 = 14
)
