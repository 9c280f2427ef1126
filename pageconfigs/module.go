package pageconfigs

import (
	"github.com/reusee/dscope"
	"github.com/reusee/pagehook/configs"
	"github.com/reusee/pagehook/logs"
)

type Module struct {
	dscope.Module
	Configs configs.Module
	Logs    logs.Module
}
