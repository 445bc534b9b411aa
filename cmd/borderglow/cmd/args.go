package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-drift/border/pkg/config"
)

// flagSet maps "--name" to where its value goes. Value flags accept both
// "--name value" and "--name=value".
type flagSet struct {
	values map[string]*string
	bools  map[string]*bool
}

func (fs flagSet) parse(args []string) ([]string, error) {
	var positional []string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if !strings.HasPrefix(arg, "--") {
			positional = append(positional, arg)
			continue
		}
		name, value, hasValue := strings.Cut(arg, "=")
		if dst, ok := fs.bools[name]; ok {
			if hasValue {
				b, err := strconv.ParseBool(value)
				if err != nil {
					return nil, fmt.Errorf("%s expects true or false, got %q", name, value)
				}
				*dst = b
			} else {
				*dst = true
			}
			continue
		}
		dst, ok := fs.values[name]
		if !ok {
			return nil, fmt.Errorf("unknown flag %s", name)
		}
		if !hasValue {
			if i+1 >= len(args) {
				return nil, fmt.Errorf("%s requires a value", name)
			}
			value = args[i+1]
			i++
		}
		*dst = value
	}
	return positional, nil
}

// parseSize parses "WxH" with positive dimensions.
func parseSize(s string) (w, h int, err error) {
	ws, hs, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return 0, 0, fmt.Errorf("size %q must look like 640x400", s)
	}
	w, err = strconv.Atoi(ws)
	if err == nil {
		h, err = strconv.Atoi(hs)
	}
	if err != nil || w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("size %q must have positive integer dimensions", s)
	}
	return w, h, nil
}

// loadConfig reads path, falling back to $BORDERGLOW_CONFIG and then the
// built-in defaults.
func loadConfig(path string) (*config.Config, error) {
	path = configPath(path)
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

// configPath resolves the file a command reads, or "" for the defaults.
func configPath(flag string) string {
	if flag != "" {
		return flag
	}
	return os.Getenv("BORDERGLOW_CONFIG")
}
