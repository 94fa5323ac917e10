package api

import "time"

// --- API Response Envelope ---

type apiResponse[T any] struct {
	Data  T       `json:"data"`
	Error *apiErr `json:"error,omitempty"`
}

type apiErr struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// --- Knowledge Base ---

// KBType enumerates the supported knowledge base kinds.
type KBType string

const (
	KBTypeNotebook KBType = "notebook"
	KBTypeClassic  KBType = "classic"
)

// RetrievalConfig tunes how documents in a knowledge base are retrieved.
type RetrievalConfig struct {
	ChunkSize    int     `json:"chunk_size,omitempty"`
	ChunkOverlap int     `json:"chunk_overlap,omitempty"`
	TopK         int     `json:"top_k,omitempty"`
	ScoreCutoff  float64 `json:"score_cutoff,omitempty"`
}

// SummarySettings controls automatic summarization of uploaded documents.
type SummarySettings struct {
	Enabled  bool   `json:"enabled"`
	Language string `json:"language,omitempty"`
}

// KnowledgeBase is a named collection of documents scoped to a namespace.
// The namespace is either the owner's user id or a group name.
type KnowledgeBase struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description,omitempty"`
	Namespace   string           `json:"namespace"`
	KBType      KBType           `json:"kb_type"`
	Retrieval   *RetrievalConfig `json:"retrieval,omitempty"`
	Summary     *SummarySettings `json:"summary,omitempty"`
	DocCount    int              `json:"doc_count,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// CreateKnowledgeBaseInput defines the fields required to create a knowledge base.
type CreateKnowledgeBaseInput struct {
	Name        string           `json:"name"`
	Description string           `json:"description,omitempty"`
	Namespace   string           `json:"namespace"`
	KBType      KBType           `json:"kb_type"`
	Retrieval   *RetrievalConfig `json:"retrieval,omitempty"`
	Summary     *SummarySettings `json:"summary,omitempty"`
}

// UpdateKnowledgeBaseInput defines the fields for a partial update.
type UpdateKnowledgeBaseInput struct {
	Name        *string          `json:"name,omitempty"`
	Description *string          `json:"description,omitempty"`
	KBType      *KBType          `json:"kb_type,omitempty"`
	Retrieval   *RetrievalConfig `json:"retrieval,omitempty"`
	Summary     *SummarySettings `json:"summary,omitempty"`
}

// --- Group ---

// Role is the caller's role within a group as reported by the backend.
type Role string

const (
	RoleOwner      Role = "Owner"
	RoleMaintainer Role = "Maintainer"
	RoleDeveloper  Role = "Developer"
	RoleMember     Role = "Member"
)

// Group is a shared namespace the current user belongs to.
type Group struct {
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
	MyRole      Role   `json:"my_role"`
}

// --- Code Wiki ---

// GenerationStatus enumerates the lifecycle of a wiki generation job.
type GenerationStatus string

const (
	GenerationPending   GenerationStatus = "PENDING"
	GenerationRunning   GenerationStatus = "RUNNING"
	GenerationCompleted GenerationStatus = "COMPLETED"
	GenerationFailed    GenerationStatus = "FAILED"
	GenerationCancelled GenerationStatus = "CANCELLED"
)

// Terminal reports whether the status can no longer change.
func (s GenerationStatus) Terminal() bool {
	switch s {
	case GenerationCompleted, GenerationFailed, GenerationCancelled:
		return true
	}
	return false
}

// Generation is a long-running wiki build job attached to a project.
type Generation struct {
	ID        string           `json:"id"`
	Status    GenerationStatus `json:"status"`
	CreatedAt time.Time        `json:"created_at"`
}

// Project is a code-wiki repository entry with its generation history,
// newest generation first.
type Project struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	RepoURL     string       `json:"repo_url,omitempty"`
	Owner       string       `json:"owner"`
	Generations []Generation `json:"generations"`
}

// LatestGeneration returns the newest generation, or nil when none exist.
func (p *Project) LatestGeneration() *Generation {
	if len(p.Generations) == 0 {
		return nil
	}
	return &p.Generations[0]
}

// --- Auth ---

// LoginInput defines the credentials for logging in.
type LoginInput struct {
	Username string `json:"username"`
}

// LoginResponse contains the session information after successful login.
type LoginResponse struct {
	APIKey   string `json:"api_key"`
	Username string `json:"username"`
}

// --- Query ---

// QueryParams is a map of URL query parameters.
type QueryParams map[string]string
