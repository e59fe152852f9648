package char

import (
	"reflect"
	"testing"

	"github.com/future-architect/ngram/nlp"
)

func Test_charSplitter(t *testing.T) {
	type args struct {
		content string
	}
	tests := []struct {
		name string
		args args
		want []string
	}{
		{
			name: "standard",
			args: args{
				content: "hello",
			},
			want: []string{"h", "e", "l", "l", "o"},
		},
		{
			name: "empty",
			args: args{
				content: "",
			},
			want: []string{},
		},
		{
			name: "accent",
			args: args{
				content: "café",
			},
			want: []string{"c", "a", "f", "é"},
		},
		{
			name: "emoji",
			args: args{
				content: "🍺🍣",
			},
			want: []string{"🍺", "🍣"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := charSplitter(tt.args.content); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("charSplitter() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCharNgrams(t *testing.T) {
	unit, err := nlp.FindUnit(Mode)
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		name    string
		content string
		n       int
		want    []string
	}{
		{
			name:    "bigram",
			content: "hello",
			n:       2,
			want:    []string{"he", "el", "ll", "lo"},
		},
		{
			name:    "exact length",
			content: "test",
			n:       4,
			want:    []string{"test"},
		},
		{
			name:    "tests",
			content: "tests",
			n:       4,
			want:    []string{"test", "ests"},
		},
		{
			name:    "shorter than n",
			content: "a",
			n:       2,
			want:    []string{},
		},
		{
			name:    "multi-byte",
			content: "niño",
			n:       3,
			want:    []string{"niñ", "iño"},
		},
		{
			name:    "emoji",
			content: "🍺🍣",
			n:       2,
			want:    []string{"🍺🍣"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := unit.Ngrams(tt.content, tt.n); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Ngrams() = %v, want %v", got, tt.want)
			}
		})
	}
}
