package dbg

import (
	"fmt"
	"reflect"
	"strings"

	petname "github.com/dustinkirkland/golang-petname"
)

// Readable names for comparable debug values. Vertex and triangle handles are
// small integers and poly-edges are pairs of them, which all blur together in
// a long debug log; "BraveOtter" and "QuietHeron" don't. Every value asked
// about stays in the memo for the life of the process.

var memo map[interface{}]string

func init() {
	memo = make(map[interface{}]string)
	// Names are handed out in the order they are asked for, so a fixed seed
	// would make the same name look meaningful across runs. It isn't.
	petname.NonDeterministicMode()
}

func Name(obj interface{}) string {
	if isNil(obj) {
		return "Ø"
	}

	if r, ok := memo[obj]; ok {
		return r
	}
	r := fmt.Sprintf("%s%s", strings.Title(petname.Adjective()), strings.Title(petname.Name()))
	memo[obj] = r
	return r
}

func isNil(obj interface{}) bool {
	if obj == nil {
		return true
	}
	v := reflect.ValueOf(obj)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}
