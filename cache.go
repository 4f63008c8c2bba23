package hashext

func (c Client) cacheStatusForgery(
	key string,
) (found bool, forgery Forgery, err error) {
	found, err = c.options.ForgeryStore.Get(key, &forgery)
	return
}

func (c Client) cacheSetForgery(
	key string,
	forgery Forgery,
) error {
	return c.options.ForgeryStore.Set(key, forgery)
}
