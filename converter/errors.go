// Package converter holds helpers shared by geometry exporters.
package converter

import (
	"fmt"
)

type makeNewGeneralErrorFuncType = func(message string, formatedValues ...interface{}) error
type makeNewIDErrorFuncType = func(
	id interface{}, message string, formatedValues ...interface{},
) error

// GeneralMatError ...
var GeneralMatError = makeNewGeneralErrorFunc("mat.dat")

// MaterialIDError ...
var MaterialIDError = makeNewIDErrorFunc("Material", "mat.dat")

// GeneralGeoError ...
var GeneralGeoError = makeNewGeneralErrorFunc("geo.dat")

// BodyIDError ...
var BodyIDError = makeNewIDErrorFunc("Body", "geo.dat")

// ZoneIDError ...
var ZoneIDError = makeNewIDErrorFunc("Zone", "geo.dat")

func makeNewGeneralErrorFunc(serializedFileName string) makeNewGeneralErrorFuncType {
	return func(message string, formatedValues ...interface{}) error {
		return fmt.Errorf("[serializer] "+serializedFileName+": "+message, formatedValues...)
	}
}

func makeNewIDErrorFunc(modelName, serializedFileName string) makeNewIDErrorFuncType {
	return func(id interface{}, message string, formatedValues ...interface{}) error {
		header := fmt.Sprintf("[serializer] %s{Id: %v} -> %s: ", modelName, id, serializedFileName)
		return fmt.Errorf(header+message, formatedValues...)
	}
}
