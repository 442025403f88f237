// Copyright 2021 Converter Systems LLC. All rights reserved.

package ua

// DiagnosticInfo holds additional info regarding errors in service calls.
// Index fields are -1 when absent.
type DiagnosticInfo struct {
	SymbolicID          int32
	NamespaceURI        int32
	Locale              int32
	LocalizedText       int32
	AdditionalInfo      string
	InnerStatusCode     StatusCode
	InnerDiagnosticInfo *DiagnosticInfo
}

// NewDiagnosticInfo constructs a DiagnosticInfo.
func NewDiagnosticInfo(namespaceURI int32, symbolicID int32, locale int32, localizedText int32, additionalInfo string, innerStatusCode StatusCode, innerDiagnosticInfo *DiagnosticInfo) *DiagnosticInfo {
	return &DiagnosticInfo{symbolicID, namespaceURI, locale, localizedText, additionalInfo, innerStatusCode, innerDiagnosticInfo}
}
