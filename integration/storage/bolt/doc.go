// Package bolt implements core/storage.Storage on a bbolt file, for headless
// runs of the storefront that keep the cart across restarts.
//
//	st, err := bolt.Open(filepath.Join(dataDir, "storefront.db"))
//	if err != nil {
//		return err
//	}
//	defer st.Close()
package bolt
