package catalog

// UIStrings holds the interface copy for one language. Formatter fields are
// fmt templates; their verb order is part of the contract.
type UIStrings struct {
	Intro           string `json:"intro"`
	ChooseLanguage  string `json:"chooseLanguage"`
	ChooseChain     string `json:"chooseChain"`
	ProgressFormat  string `json:"progressFormat"`  // (current, total)
	TooLongFormat   string `json:"tooLongFormat"`   // (max length)
	AnalysisFormat  string `json:"analysisFormat"`  // (analysis text)
	PleaseWait      string `json:"pleaseWait"`
	SessionExpired  string `json:"sessionExpired"`
	CompletedHint   string `json:"completedHint"`
	NothingToExport string `json:"nothingToExport"`
	ImportEmpty     string `json:"importEmpty"`
	NextActions     string `json:"nextActions"`
	ExportButton    string `json:"exportButton"`
	RestartButton   string `json:"restartButton"`
	DateLayout      string `json:"dateLayout"`
}

// AIPrompts configures the summarization call for one chain. UserFormat takes
// the rendered transcript as its single argument.
type AIPrompts struct {
	System     string `json:"system"`
	UserFormat string `json:"userFormat"`
}

// ExportLabels names the sections of the exported transcript document.
type ExportLabels struct {
	Title         string `json:"title"`
	QuestionLabel string `json:"questionLabel"`
	AnswerLabel   string `json:"answerLabel"`
	AnalysisTitle string `json:"analysisTitle"`
	Unavailable   string `json:"unavailable"`
	Footer        string `json:"footer"`
	Caption       string `json:"caption"`
}

// Chain is one named, ordered question set with its own framing texts and
// prompt templates.
type Chain struct {
	ID        string       `json:"id"`
	Title     string       `json:"title"`
	Questions []string     `json:"questions"`
	Intro     string       `json:"intro"`
	Congrats  string       `json:"congrats"`
	Fallback  string       `json:"fallback"`
	Prompts   AIPrompts    `json:"-"`
	Export    ExportLabels `json:"-"`
}

// Language bundles the UI copy and question chains available for one code.
type Language struct {
	Code   string    `json:"code"`
	Label  string    `json:"label"`
	UI     UIStrings `json:"-"`
	Chains []Chain   `json:"chains"`
}
