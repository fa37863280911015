// Package cmdutil shares the initialized client between cobra subcommands.
package cmdutil

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"bomkeeper/internal/app/client"
	"bomkeeper/internal/app/client/config"
	"bomkeeper/internal/domain/bom"
)

type envKey struct{}

// Env - то, что root команда подготавливает для подкоманд
type Env struct {
	App     *client.App
	Config  *config.Config
	Confirm bom.Confirmer
	JSON    bool
}

func WithEnv(ctx context.Context, env *Env) context.Context {
	return context.WithValue(ctx, envKey{}, env)
}

// FromCommand достает окружение, положенное root командой в контекст
func FromCommand(cmd *cobra.Command) (*Env, error) {
	env, ok := cmd.Context().Value(envKey{}).(*Env)
	if !ok || env == nil || env.App == nil {
		return nil, fmt.Errorf("приложение не инициализировано")
	}
	return env, nil
}

func PrintJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// PrintStatus выводит сообщение клиента в stderr цветом его вида
func PrintStatus(st client.Status) {
	var paint func(format string, a ...interface{}) string
	switch st.Kind {
	case client.StatusSuccess:
		paint = color.GreenString
	case client.StatusError:
		paint = color.RedString
	default:
		paint = color.CyanString
	}
	fmt.Fprintln(os.Stderr, paint("%s", st.Message))
}

// Truncate обрезает s до length символов (не байт)
func Truncate(s string, length int) string {
	r := []rune(s)
	if len(r) <= length {
		return s
	}
	if length <= 3 {
		return string(r[:length])
	}
	return string(r[:length-3]) + "..."
}
