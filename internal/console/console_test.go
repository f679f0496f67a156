package console_test

import (
	"bytes"
	stderrors "errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vytor/fergusquiz/internal/console"
)

func TestStream_ReadAndWrite(t *testing.T) {
	var out bytes.Buffer
	c := console.New(strings.NewReader("login Jam17 pw\r\nexit\n"), &out)

	line, err := c.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "login Jam17 pw", line)

	line, err = c.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "exit", line)

	_, err = c.ReadLine()
	assert.ErrorIs(t, err, io.EOF)

	c.WriteLine("You scored %d/%d", 3, 4)
	c.WriteLine("%d%%", 100)
	c.WriteLine("%s", "50% done")
	assert.Equal(t, "You scored 3/4\n100%\n50% done\n", out.String())
}

func TestScripted(t *testing.T) {
	boom := stderrors.New("closed")
	c := console.NewScripted("1").FailWith(boom)

	line, err := c.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "1", line)
	assert.Equal(t, 0, c.Remaining())

	_, err = c.ReadLine()
	assert.ErrorIs(t, err, boom)

	c.WriteLine("a")
	c.WriteLine("%s-%s", "b", "c")
	c.WriteLine("%s", "100% literal")
	assert.Equal(t, []string{"a", "b-c", "100% literal"}, c.Lines())
	assert.Equal(t, "a\nb-c\n100% literal", c.Output())

	c.Reset()
	assert.Empty(t, c.Lines())
}
