package client

type Clients struct {
	*DictionaryAPI
	*DatamuseAPI
}

func InitClients() Clients {
	return Clients{
		DictionaryAPI: NewDictionaryAPI(),
		DatamuseAPI:   NewDatamuseAPI(),
	}
}
