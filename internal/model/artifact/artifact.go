package artifact

// Artifact is an immutable catalog entry for one museum object.
type Artifact struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	NameEn      string   `json:"nameEn,omitempty"`
	Period      string   `json:"period"`
	Material    string   `json:"material"`
	Designation string   `json:"designation"`
	Gallery     string   `json:"gallery,omitempty"`
	Location    string   `json:"location,omitempty"`
	Description string   `json:"description"`
	FunFacts    []string `json:"funFacts,omitempty"`
	ImageURL    string   `json:"imageUrl,omitempty"`
	Quiz        *Quiz    `json:"quiz,omitempty"`
}

// Quiz is a curated multiple-choice question shipped with the catalog.
type Quiz struct {
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	Answer      int      `json:"answer"`
	Explanation string   `json:"explanation"`
}

// Ref is the lightweight reference shown in selection lists.
type Ref struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Designation string `json:"designation,omitempty"`
}

// Ref returns the selection-list reference for the artifact.
func (a Artifact) Ref() Ref {
	return Ref{ID: a.ID, Name: a.Name, Designation: a.Designation}
}

// DisplayName 在同名藏品之间附加指定编号以便区分。
func (a Artifact) DisplayName() string {
	if a.Designation == "" || a.Designation == "국보" {
		return a.Name
	}
	return a.Name + " (" + a.Designation + ")"
}
