package catalog

// Language is the highlighting language of every bundled sample.
const Language = "javascript"

const getUsersCode = `// Récupérer tous les utilisateurs
fetch('https://api.example.com/users')
  .then(response => response.json())
  .then(users => console.log(users))
  .catch(error => console.error('Erreur:', error));

// Avec async/await
async function getUsers() {
  try {
    const response = await fetch('https://api.example.com/users');
    const users = await response.json();
    return users;
  } catch (error) {
    console.error('Erreur:', error);
  }
}`

const createUserCode = `// Créer un nouvel utilisateur
const newUser = {
  name: 'John Doe',
  email: 'john@example.com'
};

fetch('https://api.example.com/users', {
  method: 'POST',
  headers: {
    'Content-Type': 'application/json'
  },
  body: JSON.stringify(newUser)
})
  .then(response => response.json())
  .then(user => console.log('Utilisateur créé:', user))
  .catch(error => console.error('Erreur:', error));`

// The user URL is a JS template literal, which a Go raw string cannot hold.
const userURL = "`https://api.example.com/users/${userId}`"

const updateUserCode = `// Mettre à jour un utilisateur
const userId = '123';
const updates = {
  name: 'John Updated',
  email: 'john.updated@example.com'
};

fetch(` + userURL + `, {
  method: 'PUT',
  headers: {
    'Content-Type': 'application/json'
  },
  body: JSON.stringify(updates)
})
  .then(response => response.json())
  .then(user => console.log('Utilisateur mis à jour:', user))
  .catch(error => console.error('Erreur:', error));`

const deleteUserCode = `// Supprimer un utilisateur
const userId = '123';

fetch(` + userURL + `, {
  method: 'DELETE'
})
  .then(response => {
    if (response.ok) {
      console.log('Utilisateur supprimé avec succès');
    } else {
      throw new Error('Erreur lors de la suppression');
    }
  })
  .catch(error => console.error('Erreur:', error));`

// Default returns the bundled four-entry users catalog.
func Default() *Catalog {
	return MustNew(
		Descriptor{
			Method:      MethodGet,
			Path:        "/api/users",
			Description: "Récupère la liste de tous les utilisateurs",
			SampleCode:  getUsersCode,
		},
		Descriptor{
			Method:      MethodPost,
			Path:        "/api/users",
			Description: "Crée un nouvel utilisateur",
			SampleCode:  createUserCode,
		},
		Descriptor{
			Method:      MethodPut,
			Path:        "/api/users/:id",
			Description: "Met à jour un utilisateur existant",
			SampleCode:  updateUserCode,
		},
		Descriptor{
			Method:      MethodDelete,
			Path:        "/api/users/:id",
			Description: "Supprime un utilisateur",
			SampleCode:  deleteUserCode,
		},
	)
}
