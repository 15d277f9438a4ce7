package keys_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macropower/scrollview/pkg/keys"
)

func TestKeyBind_String(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		kb   keys.KeyBind
		want string
	}{
		"single key": {
			kb:   keys.NewBind("down", keys.New("j")),
			want: "j",
		},
		"aliases replace codes": {
			kb:   keys.NewBind("page down", keys.New("pgdown", keys.WithAlias("pgdn")), keys.New(" ", keys.WithAlias("space"))),
			want: "pgdn/space",
		},
		"hidden keys are skipped": {
			kb:   keys.NewBind("quit", keys.New("q"), keys.New("ctrl+c", keys.Hidden())),
			want: "q",
		},
		"all hidden": {
			kb:   keys.NewBind("suspend", keys.New("ctrl+z", keys.Hidden())),
			want: "",
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, tc.kb.String())
		})
	}
}

func TestKeyBind_StringRow(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		kb        keys.KeyBind
		want      string
		keyWidth  int
		descWidth int
	}{
		"padded": {
			kb:        keys.NewBind("quit", keys.New("q")),
			keyWidth:  5,
			descWidth: 10,
			want:      "q      quit    ",
		},
		"truncated description": {
			kb:        keys.NewBind("bottom", keys.New("G"), keys.New("end")),
			keyWidth:  6,
			descWidth: 6,
			want:      "G/end   bot…",
		},
		"no room for description": {
			kb:   keys.NewBind("up", keys.New("k")),
			want: "k  …",
		},
		"hidden binding": {
			kb:        keys.NewBind("suspend", keys.New("ctrl+z", keys.Hidden())),
			keyWidth:  5,
			descWidth: 10,
			want:      "",
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, tc.kb.StringRow(tc.keyWidth, tc.descWidth))
		})
	}
}

func TestKeyBind_Match(t *testing.T) {
	t.Parallel()

	kb := keys.NewBind("top", keys.New("g"), keys.New("home", keys.Hidden()))

	assert.True(t, kb.Match("g"))
	assert.True(t, kb.Match("home"), "hidden keys still match")
	assert.False(t, kb.Match("G"))

	var nilBind *keys.KeyBind
	assert.False(t, nilBind.Match("g"))
}

func TestKeyBind_AddKey(t *testing.T) {
	t.Parallel()

	kb := keys.NewBind("quit", keys.New("q"))
	kb.AddKey(keys.New("ctrl+c", keys.Hidden()))
	kb.AddKey(keys.New("q", keys.WithAlias("Q")))

	require.Len(t, kb.Keys, 2)
	assert.Equal(t, "q", kb.Keys[0].String(), "existing key is not replaced")
	assert.True(t, kb.Keys[1].Hidden)
}

func TestValidateBinds(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		sets    [][]keys.KeyBind
		wantErr string
	}{
		"unique": {
			sets: [][]keys.KeyBind{
				{keys.NewBind("up", keys.New("k")), keys.NewBind("down", keys.New("j"))},
				{keys.NewBind("quit", keys.New("q"))},
			},
		},
		"duplicate within a set": {
			sets: [][]keys.KeyBind{
				{keys.NewBind("up", keys.New("k")), keys.NewBind("top", keys.New("k"))},
			},
			wantErr: "duplicate key binding: k",
		},
		"duplicate across sets": {
			sets: [][]keys.KeyBind{
				{keys.NewBind("bottom", keys.New("G"))},
				{keys.NewBind("reload", keys.New("G"))},
			},
			wantErr: "duplicate key binding: G",
		},
		"hidden keys are still checked": {
			sets: [][]keys.KeyBind{{
				keys.NewBind("quit", keys.New("q"), keys.New("ctrl+c", keys.Hidden())),
				keys.NewBind("copy contents", keys.New("c"), keys.New("ctrl+c", keys.Hidden())),
			}},
			wantErr: "duplicate key binding: ctrl+c",
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			err := keys.ValidateBinds(tc.sets...)
			if tc.wantErr == "" {
				require.NoError(t, err)

				return
			}

			require.ErrorIs(t, err, keys.ErrDuplicateKey)
			assert.ErrorContains(t, err, tc.wantErr)
		})
	}
}

func TestSetDefaultBind(t *testing.T) {
	t.Parallel()

	def := keys.NewBind("quit", keys.New("q"))

	tcs := map[string]struct {
		kb   *keys.KeyBind
		want keys.KeyBind
	}{
		"nil takes the default": {
			kb:   nil,
			want: def,
		},
		"missing keys": {
			kb:   &keys.KeyBind{Description: "exit"},
			want: keys.NewBind("exit", keys.New("q")),
		},
		"missing description": {
			kb:   &keys.KeyBind{Keys: []keys.Key{keys.New("x")}},
			want: keys.NewBind("quit", keys.New("x")),
		},
		"fully set": {
			kb:   &keys.KeyBind{Description: "exit", Keys: []keys.Key{keys.New("x")}},
			want: keys.NewBind("exit", keys.New("x")),
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			kb := tc.kb
			keys.SetDefaultBind(&kb, def)
			require.NotNil(t, kb)
			assert.Equal(t, tc.want, *kb)
		})
	}
}

func TestKeyBindRenderer_Render(t *testing.T) {
	t.Parallel()

	t.Run("empty", func(t *testing.T) {
		t.Parallel()

		var kbr keys.KeyBindRenderer
		kbr.AddColumn()
		assert.Empty(t, kbr.Render(40))
	})

	t.Run("columns of different heights", func(t *testing.T) {
		t.Parallel()

		var kbr keys.KeyBindRenderer
		kbr.AddColumn(
			keys.NewBind("down", keys.New("j")),
			keys.NewBind("up", keys.New("k")),
		)
		kbr.AddColumn(
			keys.NewBind("top", keys.New("g"), keys.New("home")),
		)

		assert.Equal(t, ""+
			" j  down             g/home  top        \n"+
			" k  up                                  ", kbr.Render(40))
	})

	t.Run("hidden rows are dropped", func(t *testing.T) {
		t.Parallel()

		var kbr keys.KeyBindRenderer
		kbr.AddColumn(
			keys.NewBind("quit", keys.New("q"), keys.New("ctrl+c", keys.Hidden())),
			keys.NewBind("suspend", keys.New("ctrl+z", keys.Hidden())),
		)

		got := kbr.Render(30)
		assert.Contains(t, got, "quit")
		assert.NotContains(t, got, "ctrl+c")
		assert.NotContains(t, got, "suspend")
		assert.NotContains(t, got, "\n")
	})
}
