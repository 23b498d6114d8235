// Package report encodes experiment results for the rendering side. Each
// report is one JSON document carrying the run identity, the parameters the
// run used and the raw numeric series.
package report

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/go-faster/jx"
	"github.com/go-openapi/strfmt"
	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	"github.com/tidwall/pretty"
	"go.uber.org/zap"

	"github.com/oqtopus-team/oqtopus-fidelity/core"
)

var jsonIter = jsoniter.ConfigCompatibleWithStandardLibrary

type Report struct {
	RunID       uuid.UUID
	GeneratedAt strfmt.DateTime
	Experiment  string
	Parameters  *core.ExperimentSetting
	Result      core.Result
}

// New builds the report of one run stamped with id and the UTC form of at.
func New(id uuid.UUID, at time.Time, name string, s *core.ExperimentSetting, r core.Result) *Report {
	return &Report{
		RunID:       id,
		GeneratedAt: strfmt.DateTime(at.UTC()),
		Experiment:  name,
		Parameters:  s,
		Result:      r,
	}
}

// Encode writes the report as a single JSON object.
func (r *Report) Encode(e *jx.Encoder) error {
	params, err := jsonIter.Marshal(r.Parameters)
	if err != nil {
		return err
	}
	e.ObjStart()
	e.FieldStart("run_id")
	e.Str(r.RunID.String())
	e.FieldStart("generated_at")
	e.Str(r.GeneratedAt.String())
	e.FieldStart("experiment")
	e.Str(r.Experiment)
	e.FieldStart("parameters")
	e.Raw(params)
	if r.Result != nil {
		r.Result.EncodeFields(e)
	}
	e.ObjEnd()
	return nil
}

func (r *Report) MarshalJSON() ([]byte, error) {
	e := jx.GetEncoder()
	defer jx.PutEncoder(e)
	if err := r.Encode(e); err != nil {
		return nil, err
	}
	return append([]byte(nil), e.Bytes()...), nil
}

// Writer is a core.ResultWriter that streams reports to out, one document
// per line unless Indent is set.
type Writer struct {
	mu     sync.Mutex
	out    io.Writer
	indent bool
	now    func() time.Time
	newID  func() uuid.UUID
}

func NewWriter(out io.Writer, indent bool) *Writer {
	return &Writer{
		out:    out,
		indent: indent,
		now:    time.Now,
		newID:  uuid.New,
	}
}

func (w *Writer) Write(name string, s *core.ExperimentSetting, res core.Result) error {
	r := New(w.newID(), w.now(), name, s, res)
	b, err := r.MarshalJSON()
	if err != nil {
		zap.L().Error(fmt.Sprintf("failed to encode report/experiment:%s/reason:%s", name, err))
		return err
	}
	if w.indent {
		b = pretty.Pretty(b)
	} else {
		b = append(b, '\n')
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	if _, err := w.out.Write(b); err != nil {
		zap.L().Error(fmt.Sprintf("failed to write report/experiment:%s/reason:%s", name, err))
		return err
	}
	zap.L().Info(fmt.Sprintf("wrote report/experiment:%s/run_id:%s", name, r.RunID))
	return nil
}
