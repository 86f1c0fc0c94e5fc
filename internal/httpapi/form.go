package httpapi

import (
	"bytes"
	_ "embed"
	"html/template"
	"net/http"

	"github.com/rpgo/pension-advisor/internal/config"
	"github.com/rpgo/pension-advisor/internal/domain"
	"github.com/rpgo/pension-advisor/internal/output"
	"go.uber.org/zap"
)

//go:embed templates/form.html.tmpl
var formTemplateSource string

var formTemplate = template.Must(template.New("form").Funcs(template.FuncMap{
	"riskField": config.RiskField,
}).Parse(formTemplateSource))

type formField struct {
	Name  string
	Label string
}

var formFields = []formField{
	{config.FieldAge, "Current age"},
	{config.FieldAnnualIncome, "Annual income"},
	{config.FieldCurrentAssets, "Current assets"},
	{config.FieldMonthlyExpenses, "Monthly expenses"},
	{config.FieldRetirementAge, "Planned retirement age"},
}

type formPage struct {
	Fields    []formField
	Questions [domain.RiskQuestionCount]domain.RiskQuestion
	Values    map[string]string
	Error     string
}

func (s *server) handleForm(w http.ResponseWriter, _ *http.Request) {
	s.renderForm(w, http.StatusOK, map[string]string{}, "")
}

func (s *server) handleFormSubmit(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := r.ParseForm(); err != nil {
		s.renderForm(w, http.StatusBadRequest, map[string]string{}, "could not read the submitted form")
		return
	}
	values := make(map[string]string, len(r.PostForm))
	for k := range r.PostForm {
		values[k] = r.PostForm.Get(k)
	}

	profile, err := config.ParseProfile(values)
	if err != nil {
		s.renderForm(w, http.StatusBadRequest, values, err.Error())
		return
	}

	plan, err := s.planner.GeneratePlan(r.Context(), profile)
	if err != nil {
		if domain.IsValidationError(err) {
			s.renderForm(w, http.StatusBadRequest, values, err.Error())
			return
		}
		s.log.Error("plan generation failed", zap.Error(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	page, err := output.HTMLFormatter{}.Format(&plan)
	if err != nil {
		s.log.Error("render plan", zap.Error(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(page)
}

func (s *server) renderForm(w http.ResponseWriter, status int, values map[string]string, msg string) {
	var buf bytes.Buffer
	err := formTemplate.Execute(&buf, formPage{
		Fields:    formFields,
		Questions: domain.RiskQuestions,
		Values:    values,
		Error:     msg,
	})
	if err != nil {
		s.log.Error("render form", zap.Error(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}
