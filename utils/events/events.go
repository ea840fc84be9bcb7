package events

import (
	"fmt"
	"reflect"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stoewer/go-strcase"
)

// Emit emits the given typed events. The event type is the snake cased name of the struct,
// every exported field becomes an attribute with a snake cased key.
func Emit(ctx sdk.Context, events ...interface{}) {
	for _, event := range events {
		ctx.EventManager().EmitEvent(ToSDKEvent(event))
	}
}

// ToSDKEvent converts a typed event struct into an untyped sdk event
func ToSDKEvent(event interface{}) sdk.Event {
	v := reflect.Indirect(reflect.ValueOf(event))
	if v.Kind() != reflect.Struct {
		panic(fmt.Sprintf("event must be a struct, got %T", event))
	}

	t := v.Type()
	attributes := make([]sdk.Attribute, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		attributes = append(attributes, sdk.NewAttribute(strcase.SnakeCase(field.Name), fmt.Sprint(v.Field(i).Interface())))
	}

	return sdk.NewEvent(strcase.SnakeCase(t.Name()), attributes...)
}

// Attribute returns the value of the first attribute with the given key
func Attribute(event sdk.Event, key string) (string, bool) {
	for _, attribute := range event.Attributes {
		if attribute.Key == key {
			return attribute.Value, true
		}
	}

	return "", false
}
