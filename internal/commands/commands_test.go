package commands

import (
	"errors"
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	args, ok := Parse("cmd part -size 2,2,2 Base")
	require.True(t, ok)
	assert.Equal(t, []string{"part", "-size", "2,2,2", "Base"}, args)

	_, ok = Parse("part Base")
	assert.False(t, ok)

	args, ok = Parse("cmd ")
	assert.True(t, ok)
	assert.Empty(t, args)
}

func TestSplitQuotes(t *testing.T) {
	assert.Equal(t, []string{"set", "A", "Name", "Big Box"}, Split(`set A Name "Big Box"`))
	assert.Equal(t, []string{"set", "A", "Name", ""}, Split(`set  A	Name ""`))
	assert.Nil(t, Split("   "))
}

func TestExecuteResetsFlags(t *testing.T) {
	r := NewRegistry()
	var got []string
	r.Register("greet", "greet [-loud] name", func(fs *flag.FlagSet) func([]string) error {
		loud := fs.Bool("loud", false, "shout")
		return func(args []string) error {
			if len(args) != 1 {
				return errors.New("want a name")
			}
			s := args[0]
			if *loud {
				s += "!"
			}
			got = append(got, s)
			return nil
		}
	})

	require.NoError(t, r.Execute([]string{"greet", "-loud", "ann"}))
	require.NoError(t, r.Execute([]string{"greet", "bob"}))
	assert.Equal(t, []string{"ann!", "bob"}, got)

	assert.Error(t, r.Execute([]string{"greet"}))
	assert.Error(t, r.Execute([]string{"greet", "-nope", "x"}))
	assert.ErrorIs(t, r.Execute([]string{"wave"}), ErrUnknown)
	assert.Error(t, r.Execute(nil))

	assert.Equal(t, []string{"greet"}, r.Names())
	assert.Equal(t, "greet [-loud] name", r.Usage("greet"))
	assert.Equal(t, "", r.Usage("wave"))
}
