package compose

import (
	"strings"

	"github.com/scriptsmith-labs/scriptsmith/internal/genconfig"
)

func shebangPart(r *Request) error {
	r.Main.Line(Shebang(r.Config))
	r.Main.Blank()
	return nil
}

// flagsPart assembles the single "set -..." line. Flag order is fixed: e, E, x.
func flagsPart(r *Request) error {
	var flags []string
	if r.Config.SetE {
		flags = append(flags, "e")
	}
	if r.Config.ErrTrap == genconfig.ErrTrapInherited {
		flags = append(flags, "E")
	}
	if r.Config.SetX {
		flags = append(flags, "x")
	}

	if len(flags) > 0 {
		r.Main.Line("set -" + strings.Join(flags, ""))
		r.Main.Blank()
	}
	return nil
}

func basedirPart(r *Request) error {
	if r.Config.Greadlink {
		r.Main.Block(`if type greadlink &> /dev/null
then
    BASEDIR=$(dirname "$(greadlink -f -- "$0")")
else
    BASEDIR=$(dirname "$(readlink -f -- "$0")")
fi`, false)
	} else {
		r.Main.Line(`BASEDIR=$(dirname "$(readlink -f -- "$0")")`)
	}
	r.Main.Line("# Adapt or remove the ROOTDIR definition depending")
	r.Main.Line("# on the depth of this script within the project.")
	r.Main.Line(`ROOTDIR=$(dirname "$BASEDIR")`)
	r.Main.Line("readonly BASEDIR ROOTDIR")
	r.Main.Blank()
	return nil
}

func constantsPart(r *Request) error {
	if r.Config.Positionals {
		r.Main.Line("readonly DEFAULT_BAR=/the/default/bar")
		r.Main.Blank()
	}
	return nil
}
