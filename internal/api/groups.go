package api

// ListGroups returns the groups the current user belongs to, with the
// user's role in each.
func (c *Client) ListGroups() ([]Group, error) {
	data, err := c.get("/api/groups")
	if err != nil {
		return nil, err
	}
	return decodeList[Group](data)
}
