package findpkg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDerivePackageName(t *testing.T) {
	t.Parallel()
	tests := []struct {
		filename string
		want     string
	}{
		{"FindFoo.cmake", "FindFoo"},
		{"Foo.Bar.cmake", "Foo"},
		{"zlib.cmake", "zlib"},
		{"NoExtension", "NoExtension"},
		{".hidden.cmake", ""},
		{".", ""},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			assert.Equal(t, tt.want, derivePackageName(tt.filename))
		})
	}
}
