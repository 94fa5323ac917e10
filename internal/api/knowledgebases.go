package api

import "fmt"

// --- Knowledge Base Methods ---

// ListKnowledgeBases fetches knowledge bases, typically filtered by namespace.
// Order is whatever the backend returns; the caller must not re-sort.
func (c *Client) ListKnowledgeBases(params QueryParams) ([]KnowledgeBase, error) {
	data, err := c.get(buildQuery("/api/knowledge-bases", params))
	if err != nil {
		return nil, err
	}
	return decodeList[KnowledgeBase](data)
}

func (c *Client) GetKnowledgeBase(id string) (*KnowledgeBase, error) {
	data, err := c.get(fmt.Sprintf("/api/knowledge-bases/%s", id))
	if err != nil {
		return nil, err
	}
	return decodeOne[KnowledgeBase](data)
}

func (c *Client) CreateKnowledgeBase(input CreateKnowledgeBaseInput) (*KnowledgeBase, error) {
	data, err := c.post("/api/knowledge-bases", input)
	if err != nil {
		return nil, err
	}
	return decodeOne[KnowledgeBase](data)
}

func (c *Client) UpdateKnowledgeBase(id string, input UpdateKnowledgeBaseInput) (*KnowledgeBase, error) {
	data, err := c.patch(fmt.Sprintf("/api/knowledge-bases/%s", id), input)
	if err != nil {
		return nil, err
	}
	return decodeOne[KnowledgeBase](data)
}

func (c *Client) DeleteKnowledgeBase(id string) error {
	_, err := c.del(fmt.Sprintf("/api/knowledge-bases/%s", id))
	return err
}
