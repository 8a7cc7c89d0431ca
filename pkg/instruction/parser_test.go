package instruction_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brettwooldridge/winsw/pkg/instruction"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		want    instruction.Instruction
		wantErr bool
	}{
		{
			name: "comment",
			line: "# deploy step one",
			want: instruction.Comment{LineNum: 1, Text: " deploy step one"},
		},
		{
			name: "comment_indented",
			line: "   # note",
			want: instruction.Comment{LineNum: 1, Text: " note"},
		},
		{
			name: "delete",
			line: "<tmp/old.txt",
			want: instruction.Delete{LineNum: 1, Pattern: "tmp/old.txt"},
		},
		{
			name: "delete_quoted",
			line: `<"tmp/old name.txt"`,
			want: instruction.Delete{LineNum: 1, Pattern: "tmp/old name.txt"},
		},
		{
			name: "execute_verbatim",
			line: "@systemctl reload nginx",
			want: instruction.Execute{LineNum: 1, CommandLine: "systemctl reload nginx"},
		},
		{
			name: "move_overwrite",
			line: "tmp/new.dll > bin/app.dll",
			want: instruction.Move{
				LineNum:     1,
				Source:      "tmp/new.dll",
				Destination: "bin/app.dll",
				Policy:      instruction.Overwrite,
			},
		},
		{
			name: "move_no_overwrite",
			line: "tmp/conf ) etc/conf",
			want: instruction.Move{
				LineNum:     1,
				Source:      "tmp/conf",
				Destination: "etc/conf",
				Policy:      instruction.NoOverwriteMerge,
			},
		},
		{
			name: "move_no_space_absorbs_preceding_char",
			line: "ab> c",
			want: instruction.Move{
				LineNum:     1,
				Source:      "a",
				Destination: "c",
				Policy:      instruction.Overwrite,
			},
		},
		{
			name: "quoted_operator_in_operand",
			line: `"a>b.txt" > dest.txt`,
			want: instruction.Move{
				LineNum:     1,
				Source:      "a>b.txt",
				Destination: "dest.txt",
				Policy:      instruction.Overwrite,
			},
		},
		{
			name: "quoted_paren_with_real_merge_operator",
			line: `"notes (final).txt" ) archive/`,
			want: instruction.Move{
				LineNum:     1,
				Source:      "notes (final).txt",
				Destination: "archive/",
				Policy:      instruction.NoOverwriteMerge,
			},
		},
		{
			name: "overwrite_wins_over_merge_paren",
			line: "src (x) > dst",
			want: instruction.Move{
				LineNum:     1,
				Source:      "src (x)",
				Destination: "dst",
				Policy:      instruction.Overwrite,
			},
		},
		{
			name:    "two_unquoted_gt_is_ambiguous",
			line:    "a > b > c",
			wantErr: true,
		},
		{
			name:    "two_unquoted_parens_is_ambiguous",
			line:    "a ) b ) c",
			wantErr: true,
		},
		{
			name:    "no_operator",
			line:    "bogus line no operator",
			wantErr: true,
		},
		{
			name:    "operator_first_char",
			line:    "> dest",
			wantErr: true,
		},
		{
			name:    "blank",
			line:    "   ",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := instruction.Parse(tt.line, 1)
			if tt.wantErr {
				require.Error(t, err)
				var perr *instruction.ParseError
				require.ErrorAs(t, err, &perr)
				assert.Equal(t, 1, perr.LineNum)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseExpandsEnvInOperands(t *testing.T) {
	t.Setenv("DEPLOY_ROOT", "/srv/deploy")

	got, err := instruction.Parse("%DEPLOY_ROOT%/new.bin > %DEPLOY_ROOT%/app.bin", 3)
	require.NoError(t, err)

	mv, ok := got.(instruction.Move)
	require.True(t, ok)
	assert.Equal(t, 3, mv.Line())
	assert.Equal(t, "/srv/deploy/new.bin", mv.Source)
	assert.Equal(t, "/srv/deploy/app.bin", mv.Destination)
}
