package interfaces

import (
	"github.com/m-mizutani/octoscope/pkg/domain/model"
)

type Display interface {
	ShowReport(repo model.Repository, report *model.AnalysisReport)
}
