package primitive_test

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"

	"seq-rebuild/primitive"
)

func Example() {
	type Label string
	type Empty struct{}

	fmt.Println(primitive.FromReflectType(reflect.TypeOf(0)))
	fmt.Println(primitive.FromReflectType(reflect.TypeOf(1.5)))
	fmt.Println(primitive.FromReflectType(reflect.TypeOf("")))
	fmt.Println(primitive.FromReflectType(reflect.TypeOf(Label(""))))
	fmt.Println(primitive.FromReflectType(reflect.TypeOf(false)))
	fmt.Println(primitive.FromReflectType(reflect.TypeOf([]any{})))
	fmt.Println(primitive.FromReflectType(reflect.TypeOf(Empty{})))
	fmt.Println(primitive.FromReflectType(nil))
	fmt.Println(primitive.FromReflectType(reflect.TypeOf(func() {})))
	// Output:
	// KindNumber
	// KindNumber
	// KindString
	// KindString
	// KindBool
	// KindArray
	// KindRecord
	// KindNull
	// KindEnum(0)
}

func TestKindClasses(t *testing.T) {
	for k := primitive.KindEnum(1); int(k) < primitive.KindTotal; k++ {
		assert.True(t, k.IsValid())
		assert.False(t, k.IsCategory() && k.IsContainer(), "%s is both a category and a container", k)
	}

	assert.True(t, primitive.KindArray.IsContainer())
	assert.True(t, primitive.KindRecord.IsContainer())
	assert.False(t, primitive.KindString.IsCategory())
	assert.True(t, primitive.KindText.IsCategory())

	assert.False(t, primitive.KindEnum(0).IsValid())
	assert.False(t, primitive.KindEnum(primitive.KindTotal).IsValid())
}

func TestIsScalar(t *testing.T) {
	assert.True(t, primitive.KindRecord.IsScalar())
	assert.True(t, primitive.KindBoolean.IsScalar())
	assert.False(t, primitive.KindArray.IsScalar())
	assert.False(t, primitive.KindEnum(0).IsScalar())
}

func TestCategoryNames(t *testing.T) {
	for _, name := range []string{"boolean", "number", "string", "any", "unknown", "never"} {
		k, ok := primitive.CategoryFromName(name)
		assert.True(t, ok, name)
		assert.True(t, k.IsCategory())
		assert.Equal(t, name, k.CategoryName())
	}

	_, ok := primitive.CategoryFromName("object")
	assert.False(t, ok)
	assert.Empty(t, primitive.KindBool.CategoryName())
}
